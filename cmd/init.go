package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adebayo-ak/carechat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize carechat configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure carechat and generates a .carechat.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
