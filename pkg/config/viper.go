// Package config is responsible for initializing the application's
// configuration. It uses the Viper library to read settings from a config
// file and environment variables, providing a unified configuration system.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/BookRecomendations/DataScrapper/internal/scraper"
)

// InitConfig initializes the application's configuration using Viper. It sets
// up default values, defines configuration search paths, and enables reading
// from environment variables. Called once at startup, before any command
// logic runs.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")                   // Current working directory
		viper.AddConfigPath("/etc/datascrapper/")  // System-wide configuration
		viper.AddConfigPath("$HOME/.datascrapper") // User-specific configuration
	}

	// --- Set Defaults ---
	viper.SetDefault("scraper.workers", 16)
	viper.SetDefault("scraper.batches_per_worker", 4)
	viper.SetDefault("scraper.report_interval", 10)
	viper.SetDefault("scraper.min_description_len", 10)
	viper.SetDefault("scraper.delay_min", "1s")
	viper.SetDefault("scraper.delay_max", "4s")
	viper.SetDefault("scraper.user_agents", scraper.DefaultUserAgents())
	viper.SetDefault("scraper.results_file", "new_descriptions.csv")
	viper.SetDefault("scraper.errors_file", "scraping_errors.csv")

	viper.SetDefault("http.timeout_seconds", 15)

	viper.SetDefault("logging.development", false)
	viper.SetDefault("logging.file", "scraping.log")

	// Metrics are off unless an operator sets a listen address.
	viper.SetDefault("metrics.addr", "")

	// --- Environment Variables ---
	viper.SetEnvPrefix("SCRAPER") // e.g., SCRAPER_SCRAPER_WORKERS=64
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// --- Read Config File ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Defaults and env vars still apply; a broken file should be seen.
			fmt.Fprintf(os.Stderr, "error reading config file: %v\n", err)
		}
	}
}
