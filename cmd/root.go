package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BookRecomendations/DataScrapper/pkg/config"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datascrapper",
		Short: "A concurrent scraper for book description pages.",
		Long: `datascrapper re-fetches book detail pages for records whose stored
descriptions are missing or unusable. It reads ID-URL pairs from a CSV file,
fetches each page with a bounded worker pool and randomized throttling,
extracts the description text, and appends results and failures to durable
CSV files.`,
	}

	// Initialize Viper configuration.
	cobra.OnInitialize(func() {
		config.InitConfig(cfgFile)
	})

	// Define persistent flags.
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands.
	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
