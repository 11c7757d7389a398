package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/server"
	"github.com/ziadkadry99/depviz/internal/site"
	"github.com/ziadkadry99/depviz/internal/watcher"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dependency dashboard",
	Long: `Starts the HTTP dashboard with live search, reverse lookup, code
snippets and the file tree. With --watch the dataset file is reloaded
whenever it changes.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("port", 0, "port to listen on (defaults to config port)")
	serverCmd.Flags().Bool("watch", true, "reload the dataset when the file changes")
	serverCmd.Flags().Bool("open", false, "open the dashboard in a browser")
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	port := cfg.Port
	if cmd.Flags().Changed("port") {
		port, _ = cmd.Flags().GetInt("port")
	}

	store := dashboard.NewStore(snap)
	dash := dashboard.New(store, cfg.Dashboard())

	srv := server.New(server.Config{Port: port, AllowAll: cfg.AllowAllOrigins})
	dash.RegisterRoutes(srv.Router())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := srv.Listen()
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://localhost:%d", ln.Addr().(*net.TCPAddr).Port)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(ctx, ln) })

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		snapCfg := cfg.Snapshot()
		w, err := watcher.New(cfg.Dataset, func() {
			if err := store.Reload(cfg.Dataset, snapCfg); err != nil {
				slog.Error("dataset reload failed", "component", "watcher", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("watching dataset: %w", err)
		}
		g.Go(func() error { return w.Run(ctx) })
	}

	fmt.Fprintf(os.Stderr, "depviz %s: %d files from %s\n", Version, len(snap.Dataset.Files), cfg.Dataset)
	fmt.Fprintf(os.Stderr, "  Dashboard: %s\n", url)
	fmt.Fprintf(os.Stderr, "  Metrics:   %s/metrics\n", url)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}

	return g.Wait()
}
