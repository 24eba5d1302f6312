package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BookRecomendations/DataScrapper/internal/metrics"
	"github.com/BookRecomendations/DataScrapper/internal/progress"
)

// Worker processes batches of WorkItems sequentially: throttle, fetch,
// extract, record. A single item's failure is contained to that item.
type Worker struct {
	fetcher           Fetcher
	extractor         Extractor
	throttle          Throttle
	results           ResultSink
	errors            ErrorSink
	tracker           *progress.Tracker
	minDescriptionLen int
	logger            *zap.Logger
}

// NewWorker constructs a Worker.
func NewWorker(
	fetcher Fetcher,
	extractor Extractor,
	throttle Throttle,
	results ResultSink,
	errors ErrorSink,
	tracker *progress.Tracker,
	minDescriptionLen int,
	logger *zap.Logger,
) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		fetcher:           fetcher,
		extractor:         extractor,
		throttle:          throttle,
		results:           results,
		errors:            errors,
		tracker:           tracker,
		minDescriptionLen: minDescriptionLen,
		logger:            logger,
	}
}

// ProcessBatch runs the fetch pipeline over one batch. Successful outcomes
// are buffered and flushed to the result sink once per batch; failures are
// written to the error sink immediately. Every item updates the shared
// progress tracker exactly once.
func (w *Worker) ProcessBatch(ctx context.Context, batch []WorkItem) {
	if len(batch) == 0 {
		return
	}
	outcomes := make([]Outcome, 0, len(batch))
	for _, item := range batch {
		outcome, err := w.processItem(ctx, item)
		if err != nil {
			w.logger.Error("scrape failed",
				zap.Int("id", item.ID),
				zap.String("url", item.URL),
				zap.Error(err),
			)
			if sinkErr := w.errors.Append(item.ID, item.URL, err.Error()); sinkErr != nil {
				w.logger.Error("error sink append failed", zap.Int("id", item.ID), zap.Error(sinkErr))
			}
		} else {
			outcomes = append(outcomes, outcome)
		}
		w.tracker.Record()
	}
	if len(outcomes) == 0 {
		return
	}
	if err := w.results.Append(outcomes); err != nil {
		w.logger.Error("result sink append failed", zap.Int("outcomes", len(outcomes)), zap.Error(err))
	}
}

func (w *Worker) processItem(ctx context.Context, item WorkItem) (Outcome, error) {
	pause(ctx, w.throttle.Delay())

	start := time.Now()
	body, err := w.fetcher.Fetch(ctx, item.URL, w.throttle.UserAgent())
	metrics.ObserveFetchDuration(time.Since(start))
	if err != nil {
		metrics.RecordOutcome(metrics.ResultError)
		return Outcome{}, fmt.Errorf("fetch %s: %w", item.URL, err)
	}

	text, found := w.extractor.Extract(body)
	text = strings.TrimSpace(text)
	if !found {
		w.logger.Warn("no description found", zap.Int("id", item.ID), zap.String("url", item.URL))
		metrics.RecordOutcome(metrics.ResultNoDescription)
		return Outcome{ID: item.ID}, nil
	}
	if len(text) < w.minDescriptionLen {
		// Boilerplate or empty section, not genuine content.
		w.logger.Debug("description below minimum length",
			zap.Int("id", item.ID),
			zap.Int("length", len(text)),
		)
		metrics.RecordOutcome(metrics.ResultNoDescription)
		return Outcome{ID: item.ID}, nil
	}

	w.logger.Info("scraped description", zap.Int("id", item.ID), zap.String("url", item.URL))
	metrics.RecordOutcome(metrics.ResultDescribed)
	return Outcome{ID: item.ID, Description: text, HasDescription: true}, nil
}

// pause sleeps for delay unless the context finishes first. Only the calling
// worker suspends.
func pause(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
