package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/cli"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics",
	Long:  `Prints file, import and export counts, the category and language breakdown, top imports, god files and coupling hotspots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		fmt.Print(cli.Stats(snap))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
