package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oceaniq/oceaniq/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize oceaniq configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the server port, branding, assistant reply delay and log format, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
