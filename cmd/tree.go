package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/cli"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the dataset's file tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		fmt.Print(cli.Tree(snap.Tree))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
