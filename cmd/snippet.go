package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet <file> <import>",
	Short: "Print the import statement recorded for a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		s, ok := snap.Index.Snippet(args[0], args[1])
		if !ok {
			return fmt.Errorf("no snippet recorded for %q in %s", args[1], args[0])
		}

		fmt.Println(s.Text)
		if s.Line > 0 {
			fmt.Fprintf(os.Stderr, "%s\n", snap.Links.File(args[0], s.Line))
		}

		if copyIt, _ := cmd.Flags().GetBool("copy"); copyIt {
			// A clipboard failure is reported but does not fail the command.
			if err := clipboard.WriteAll(s.Text); err != nil {
				slog.Warn("copy to clipboard failed", "error", err)
			} else {
				fmt.Fprintln(os.Stderr, "Copied to clipboard.")
			}
		}
		return nil
	},
}

func init() {
	snippetCmd.Flags().Bool("copy", false, "copy the snippet to the clipboard")
	rootCmd.AddCommand(snippetCmd)
}
