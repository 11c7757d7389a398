package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	datasetFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "depviz",
	Short: "Interactive dependency dashboard for precomputed import/export data",
	Long: `depviz renders a dependency-visualization dashboard from a per-file
import/export dataset: reverse import lookup, dependency counts, category
breakdowns, a filterable card grid and a collapsible file tree, with the
view state kept in the URL so any view can be shared.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".depviz.yml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&datasetFile, "dataset", "d", "", "dataset file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging installs a text slog handler on stderr. Stdout is reserved
// for command output and the MCP protocol.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
