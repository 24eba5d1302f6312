// Package metrics exposes Prometheus collectors for the scraper.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the items counter.
const (
	ResultDescribed     = "described"
	ResultNoDescription = "no_description"
	ResultError         = "error"
)

var (
	itemsTotal           *prometheus.CounterVec
	fetchDurationSeconds prometheus.Histogram

	once sync.Once
)

// Init initializes the Prometheus collectors. It is safe to call multiple
// times; the recording helpers are no-ops until it has run.
func Init() {
	once.Do(func() {
		itemsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scraper_items_total",
				Help: "Total number of processed work items, labeled by result.",
			},
			[]string{"result"},
		)

		fetchDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scraper_fetch_duration_seconds",
				Help:    "Histogram of page fetch latencies.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
		)
	})
}

// RecordOutcome counts one processed item under the given result label.
func RecordOutcome(result string) {
	if itemsTotal == nil {
		return
	}
	itemsTotal.WithLabelValues(result).Inc()
}

// ObserveFetchDuration records the latency of one fetch attempt.
func ObserveFetchDuration(d time.Duration) {
	if fetchDurationSeconds == nil {
		return
	}
	fetchDurationSeconds.Observe(d.Seconds())
}
