// Package cmd defines and implements the CLI commands for the datascrapper
// executable.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/BookRecomendations/DataScrapper/internal/clock/system"
	"github.com/BookRecomendations/DataScrapper/internal/config"
	"github.com/BookRecomendations/DataScrapper/internal/extract"
	collyfetcher "github.com/BookRecomendations/DataScrapper/internal/fetcher/colly"
	"github.com/BookRecomendations/DataScrapper/internal/id/uuid"
	"github.com/BookRecomendations/DataScrapper/internal/input"
	"github.com/BookRecomendations/DataScrapper/internal/logging"
	"github.com/BookRecomendations/DataScrapper/internal/metrics"
	"github.com/BookRecomendations/DataScrapper/internal/progress"
	"github.com/BookRecomendations/DataScrapper/internal/scraper"
	"github.com/BookRecomendations/DataScrapper/internal/sink"
)

// newScrapeCmd creates and configures the 'scrape' subcommand. It takes the
// input CSV path as its only positional argument; the worker count can be
// overridden on the command line.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <input-file>",
		Short: "Scrapes descriptions for the ID-URL pairs in the input CSV",
		Long: `Reads ID-URL pairs from the given CSV file and fetches each page
concurrently, appending extracted descriptions to the results file and
failures to the errors file. Both output files keep their prior content, so
interrupted runs can be resumed by re-running with the remaining input.`,

		Args: cobra.ExactArgs(1),
		RunE: runScrapeCommand,
	}
	cmd.Flags().Int("workers", 16, "number of concurrent workers")
	_ = viper.BindPFlag("scraper.workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runScrapeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLogs, err := logging.New(cfg.Logging.Development, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLogs()

	runID, err := uuid.NewUUIDGenerator().NewID()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	logger = logger.With(zap.String("run_id", runID))
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Info("using config file", zap.String("path", used))
	}

	metrics.Init()
	if cfg.Metrics.Addr != "" {
		go metrics.Serve(cmd.Context(), cfg.Metrics.Addr, logger)
	}

	logger.Info("starting scraping", zap.String("input", args[0]), zap.Int("workers", cfg.Scraper.Workers))
	start := time.Now()

	// An unreadable input file is the only fatal error past this point.
	items, err := input.ReadWorkItems(args[0], logger)
	if err != nil {
		return fmt.Errorf("read work items: %w", err)
	}
	if len(items) == 0 {
		logger.Info("no work items found; nothing to scrape")
		return nil
	}

	results, err := sink.NewResultSink(cfg.Scraper.ResultsFile, logger)
	if err != nil {
		return fmt.Errorf("open result sink: %w", err)
	}
	defer func() {
		if cerr := results.Close(); cerr != nil {
			logger.Warn("failed to close result sink", zap.Error(cerr))
		}
	}()

	errorSink, err := sink.NewErrorSink(cfg.Scraper.ErrorsFile, logger)
	if err != nil {
		return fmt.Errorf("open error sink: %w", err)
	}
	defer func() {
		if cerr := errorSink.Close(); cerr != nil {
			logger.Warn("failed to close error sink", zap.Error(cerr))
		}
	}()

	tracker := progress.NewTracker(len(items), cfg.Scraper.ReportInterval, system.New(), logger)
	worker := scraper.NewWorker(
		collyfetcher.New(collyfetcher.Config{Timeout: cfg.HTTPTimeout()}),
		extract.NewDescriptionExtractor(),
		scraper.NewRandomThrottle(cfg.Scraper.DelayMin, cfg.Scraper.DelayMax, cfg.Scraper.UserAgents),
		results,
		errorSink,
		tracker,
		cfg.Scraper.MinDescriptionLen,
		logger,
	)

	batchCount := scraper.BatchCount(len(items), cfg.Scraper.Workers, cfg.Scraper.BatchesPerWorker)
	batches := scraper.Partition(items, batchCount)

	sched := scraper.NewScheduler(cfg.Scraper.Workers, worker, logger)
	sched.Run(cmd.Context(), batches)

	logger.Info("scraping complete",
		zap.Int("scraped", tracker.Scraped()),
		zap.String("time_taken", progress.FormatDuration(time.Since(start))),
	)
	return nil
}
