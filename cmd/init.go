package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/reatler/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize reatler configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure reatler for your project and generates a .reatler.yml file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(rootArg(args), cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
