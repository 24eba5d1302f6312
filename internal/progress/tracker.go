// Package progress tracks shared scrape completion state and ETA logging.
package progress

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Clock abstracts time.Now so tests can drive the ETA math.
type Clock interface {
	Now() time.Time
}

// Tracker is the process-wide completion counter shared by every worker. It
// is constructed once per run, before the pool starts, and mutated under a
// mutex after each processed item.
type Tracker struct {
	mu       sync.Mutex
	scraped  int
	total    int
	start    time.Time
	interval int
	clock    Clock
	logger   *zap.Logger
}

// NewTracker builds a Tracker for total items, logging an ETA every
// reportInterval completions and once more when the run finishes.
func NewTracker(total, reportInterval int, clock Clock, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		total:    total,
		start:    clock.Now(),
		interval: reportInterval,
		clock:    clock,
		logger:   logger,
	}
}

// Record marks one item complete. At every reporting interval, and when the
// counter reaches the total, it logs scraped/total plus the estimated time
// left. The completion log fires exactly once because each item records
// exactly once.
func (t *Tracker) Record() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scraped++
	if (t.interval > 0 && t.scraped%t.interval == 0) || t.scraped == t.total {
		t.logProgressLocked()
	}
	if t.scraped == t.total {
		t.logger.Info("all URLs scraped", zap.Int("total", t.total))
	}
}

// Scraped returns the current completion count.
func (t *Tracker) Scraped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scraped
}

// Elapsed returns the wall time since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.start)
}

// logProgressLocked logs the ETA. With zero completions the average per-item
// time is undefined, so no numeric estimate is emitted.
func (t *Tracker) logProgressLocked() {
	if t.scraped == 0 {
		return
	}
	elapsed := t.clock.Now().Sub(t.start)
	remaining := t.total - t.scraped
	eta := elapsed / time.Duration(t.scraped) * time.Duration(remaining)
	t.logger.Info("scrape progress",
		zap.Int("scraped", t.scraped),
		zap.Int("total", t.total),
		zap.String("approx_time_left", FormatDuration(eta)),
	)
}

// FormatDuration renders d as H:MM:SS, dropping sub-second precision.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
