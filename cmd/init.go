package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/depviz/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize depviz configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure depviz for your project and writes a .depviz.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
