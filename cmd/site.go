package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/progress"
	"github.com/ziadkadry99/depviz/internal/site"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate a static dashboard snapshot and report",
	Long: `Writes a self-contained static copy of the dashboard (index.html), the
dependency report (report.html, report.md) and a search index to the output
directory. --state renders a specific view, e.g. --state "rev=react&view=imports".`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().String("state", "", "view state fragment to render")
	siteCmd.Flags().String("title", "", "report title")
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to config output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = "Dependency report"
		if wd, wdErr := os.Getwd(); wdErr == nil && filepath.Base(wd) != "." {
			title = filepath.Base(wd) + " dependencies"
		}
	}

	gen := site.NewGenerator(outputDir, title)
	gen.Theme = cfg.Theme
	state, _ := cmd.Flags().GetString("state")
	gen.State = viewstate.Read(state, snap.Index.Has)
	gen.Progress = progress.NewReporter("Writing site")

	written, err := gen.Generate(snap)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, len(written))

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Println("Press Ctrl+C to stop.")
		return site.Serve(ctx, outputDir, port, openBrowser)
	}

	return nil
}
