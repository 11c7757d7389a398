package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/cli"
	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/index"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <import>",
	Short: "List the files that import a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		name := args[0]
		if !snap.Index.Has(name) {
			msg := fmt.Sprintf("no file imports %q", name)
			if s := index.Suggest(name, snap.Index.ImportNames(), 5); len(s) > 0 {
				msg += "\nDid you mean: " + strings.Join(s, ", ")
			}
			return fmt.Errorf("%s", msg)
		}

		fmt.Print(cli.Lookup(dashboard.ReverseFor(snap.Index, name, snap.Links)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
