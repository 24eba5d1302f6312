package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("scraper.workers", 16)
	v.SetDefault("scraper.batches_per_worker", 4)
	v.SetDefault("scraper.report_interval", 10)
	v.SetDefault("scraper.min_description_len", 10)
	v.SetDefault("scraper.delay_min", "1s")
	v.SetDefault("scraper.delay_max", "4s")
	v.SetDefault("scraper.results_file", "new_descriptions.csv")
	v.SetDefault("scraper.errors_file", "scraping_errors.csv")
	v.SetDefault("http.timeout_seconds", 15)
	return v
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(baseViper())
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Scraper.Workers)
	require.Equal(t, 4, cfg.Scraper.BatchesPerWorker)
	require.Equal(t, time.Second, cfg.Scraper.DelayMin)
	require.Equal(t, 4*time.Second, cfg.Scraper.DelayMax)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout())
	require.Empty(t, cfg.Metrics.Addr)
}

func TestLoadRejectsBadWorkers(t *testing.T) {
	t.Parallel()

	v := baseViper()
	v.Set("scraper.workers", 0)
	_, err := Load(v)
	require.ErrorContains(t, err, "scraper.workers")
}

func TestLoadRejectsInvertedDelays(t *testing.T) {
	t.Parallel()

	v := baseViper()
	v.Set("scraper.delay_min", "5s")
	v.Set("scraper.delay_max", "2s")
	_, err := Load(v)
	require.ErrorContains(t, err, "delay_max")
}

func TestLoadRejectsEmptyResultsFile(t *testing.T) {
	t.Parallel()

	v := baseViper()
	v.Set("scraper.results_file", "")
	_, err := Load(v)
	require.ErrorContains(t, err, "results_file")
}

func TestLoadRejectsZeroTimeout(t *testing.T) {
	t.Parallel()

	v := baseViper()
	v.Set("http.timeout_seconds", 0)
	_, err := Load(v)
	require.ErrorContains(t, err, "timeout_seconds")
}
