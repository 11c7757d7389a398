package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the dependency report",
	Long:  `Renders the dependency report as Markdown (md), an HTML fragment (html) or styled terminal output (term).`,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringP("format", "f", "term", "output format: md, html or term")
	reportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	reportCmd.Flags().String("title", "", "report title")
	reportCmd.Flags().Bool("no-graph", false, "omit the internal dependency graph")
	reportCmd.Flags().Bool("no-files", false, "omit the per-file table")
	reportCmd.Flags().Int("width", 100, "word wrap width for term output")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	_, snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	opts := report.DefaultOptions()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		opts.Title = title
	}
	if noGraph, _ := cmd.Flags().GetBool("no-graph"); noGraph {
		opts.Graph = false
	}
	if noFiles, _ := cmd.Flags().GetBool("no-files"); noFiles {
		opts.FileTable = false
	}
	md := report.Markdown(snap, opts)

	format, _ := cmd.Flags().GetString("format")
	var out string
	switch format {
	case "md", "markdown":
		out = md
	case "html":
		if out, err = report.HTML(md); err != nil {
			return err
		}
	case "term":
		width, _ := cmd.Flags().GetInt("width")
		if out, err = report.Terminal(md, width); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q: must be md, html or term", format)
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	return nil
}
