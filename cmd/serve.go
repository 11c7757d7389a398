package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	mcpserver "github.com/ziadkadry99/depviz/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing reverse lookup, file detail, search, stats and diagram tools over the dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "depviz MCP server started on stdio (dataset=%s, files=%d)\n", cfg.Dataset, len(snap.Dataset.Files))

		srv := mcpserver.NewServer(dashboard.NewStore(snap))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
