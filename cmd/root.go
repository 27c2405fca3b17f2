package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "carechat",
	Short: "Customer-care chat service with rule-based intent routing",
	Long: `Carechat is a customer-care chat service for ERP support desks.
It classifies incoming chat messages with a rule-based intent router,
tracks complaints through their lifecycle, and dispatches follow-up
reminders when customers ask for status updates.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".carechat.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
