// Package config loads and validates scraper configuration via Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Scraper ScraperConfig `mapstructure:"scraper"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ScraperConfig governs the fetch-extract-record pipeline.
type ScraperConfig struct {
	Workers           int           `mapstructure:"workers"`
	BatchesPerWorker  int           `mapstructure:"batches_per_worker"`
	ReportInterval    int           `mapstructure:"report_interval"`
	MinDescriptionLen int           `mapstructure:"min_description_len"`
	DelayMin          time.Duration `mapstructure:"delay_min"`
	DelayMax          time.Duration `mapstructure:"delay_max"`
	UserAgents        []string      `mapstructure:"user_agents"`
	ResultsFile       string        `mapstructure:"results_file"`
	ErrorsFile        string        `mapstructure:"errors_file"`
}

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

// MetricsConfig controls the optional operator metrics endpoint. An empty
// Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load unmarshals the Viper state into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for internally inconsistent values.
func (c Config) Validate() error {
	if c.Scraper.Workers < 1 {
		return fmt.Errorf("scraper.workers must be >= 1, got %d", c.Scraper.Workers)
	}
	if c.Scraper.BatchesPerWorker < 1 {
		return fmt.Errorf("scraper.batches_per_worker must be >= 1, got %d", c.Scraper.BatchesPerWorker)
	}
	if c.Scraper.ReportInterval < 1 {
		return fmt.Errorf("scraper.report_interval must be >= 1, got %d", c.Scraper.ReportInterval)
	}
	if c.Scraper.MinDescriptionLen < 0 {
		return fmt.Errorf("scraper.min_description_len must be >= 0, got %d", c.Scraper.MinDescriptionLen)
	}
	if c.Scraper.DelayMin < 0 {
		return fmt.Errorf("scraper.delay_min must be >= 0, got %s", c.Scraper.DelayMin)
	}
	if c.Scraper.DelayMax < c.Scraper.DelayMin {
		return fmt.Errorf("scraper.delay_max %s is below scraper.delay_min %s", c.Scraper.DelayMax, c.Scraper.DelayMin)
	}
	if c.Scraper.ResultsFile == "" {
		return fmt.Errorf("scraper.results_file must not be empty")
	}
	if c.Scraper.ErrorsFile == "" {
		return fmt.Errorf("scraper.errors_file must not be empty")
	}
	if c.HTTP.TimeoutSeconds < 1 {
		return fmt.Errorf("http.timeout_seconds must be >= 1, got %d", c.HTTP.TimeoutSeconds)
	}
	return nil
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
