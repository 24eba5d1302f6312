package scraper

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BookRecomendations/DataScrapper/internal/progress"
)

// mapFetcher serves canned bodies or errors keyed by URL.
type mapFetcher struct {
	bodies map[string]string
	errs   map[string]error
}

func (f *mapFetcher) Fetch(_ context.Context, url, _ string) ([]byte, error) {
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	body, ok := f.bodies[url]
	if !ok {
		return nil, errors.New("unexpected url")
	}
	return []byte(body), nil
}

// markerExtractor treats bodies prefixed with "desc:" as carrying a
// description and everything else as a miss.
type markerExtractor struct{}

func (markerExtractor) Extract(body []byte) (string, bool) {
	s := string(body)
	if text, ok := strings.CutPrefix(s, "desc:"); ok {
		return text, true
	}
	return "", false
}

type memResultSink struct {
	mu       sync.Mutex
	appends  int
	outcomes []Outcome
	err      error
}

func (s *memResultSink) Append(outcomes []Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.appends++
	s.outcomes = append(s.outcomes, outcomes...)
	return nil
}

type memErrorSink struct {
	mu   sync.Mutex
	rows [][3]string
}

func (s *memErrorSink) Append(id int, url, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, [3]string{strconv.Itoa(id), url, message})
	return nil
}

type zeroThrottle struct{}

func (zeroThrottle) Delay() time.Duration { return 0 }
func (zeroThrottle) UserAgent() string    { return "test-agent" }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newTestTracker(total int) *progress.Tracker {
	return progress.NewTracker(total, 10, &fixedClock{now: time.Unix(0, 0)}, zap.NewNop())
}

// TestWorkerProcessBatch covers the canonical mixed batch: one real
// description, one transport failure, and one description below the minimum
// length threshold.
func TestWorkerProcessBatch(t *testing.T) {
	t.Parallel()

	longDesc := strings.Repeat("x", 50)
	fetcher := &mapFetcher{
		bodies: map[string]string{
			"http://a": "desc:" + longDesc,
			"http://c": "desc:tiny",
		},
		errs: map[string]error{
			"http://b": errors.New("timeout"),
		},
	}
	results := &memResultSink{}
	errSink := &memErrorSink{}
	tracker := newTestTracker(3)
	w := NewWorker(fetcher, markerExtractor{}, zeroThrottle{}, results, errSink, tracker, 10, zap.NewNop())

	batch := []WorkItem{
		{ID: 1, URL: "http://a"},
		{ID: 2, URL: "http://b"},
		{ID: 3, URL: "http://c"},
	}
	w.ProcessBatch(context.Background(), batch)

	require.Equal(t, 3, tracker.Scraped(), "every item records exactly once")

	require.Equal(t, 1, results.appends, "success outcomes flush once per batch")
	require.Equal(t, []Outcome{
		{ID: 1, Description: longDesc, HasDescription: true},
		{ID: 3},
	}, results.outcomes)

	require.Len(t, errSink.rows, 1)
	require.Equal(t, "2", errSink.rows[0][0])
	require.Equal(t, "http://b", errSink.rows[0][1])
	require.Contains(t, errSink.rows[0][2], "timeout")
}

func TestWorkerEmptyBatchIsNoOp(t *testing.T) {
	t.Parallel()

	results := &memResultSink{}
	errSink := &memErrorSink{}
	tracker := newTestTracker(0)
	w := NewWorker(&mapFetcher{}, markerExtractor{}, zeroThrottle{}, results, errSink, tracker, 10, zap.NewNop())

	w.ProcessBatch(context.Background(), nil)

	require.Zero(t, tracker.Scraped())
	require.Zero(t, results.appends)
	require.Empty(t, errSink.rows)
}

func TestWorkerExtractionMissIsSuccess(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{bodies: map[string]string{"http://a": "<html></html>"}}
	results := &memResultSink{}
	errSink := &memErrorSink{}
	tracker := newTestTracker(1)
	w := NewWorker(fetcher, markerExtractor{}, zeroThrottle{}, results, errSink, tracker, 10, zap.NewNop())

	w.ProcessBatch(context.Background(), []WorkItem{{ID: 7, URL: "http://a"}})

	require.Empty(t, errSink.rows, "a missing description is not a failure")
	require.Equal(t, []Outcome{{ID: 7}}, results.outcomes)
	require.Equal(t, 1, tracker.Scraped())
}

// TestWorkerFailureIsolation ensures one failing item never aborts the rest
// of its batch.
func TestWorkerFailureIsolation(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{
		bodies: map[string]string{
			"http://a": "desc:" + strings.Repeat("a", 20),
			"http://c": "desc:" + strings.Repeat("c", 20),
		},
		errs: map[string]error{"http://b": errors.New("connection refused")},
	}
	results := &memResultSink{}
	errSink := &memErrorSink{}
	tracker := newTestTracker(3)
	w := NewWorker(fetcher, markerExtractor{}, zeroThrottle{}, results, errSink, tracker, 10, zap.NewNop())

	w.ProcessBatch(context.Background(), []WorkItem{
		{ID: 1, URL: "http://a"},
		{ID: 2, URL: "http://b"},
		{ID: 3, URL: "http://c"},
	})

	require.Len(t, results.outcomes, 2)
	require.Len(t, errSink.rows, 1)
	require.Equal(t, 3, tracker.Scraped())
}

func TestWorkerResultSinkErrorIsBestEffort(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{bodies: map[string]string{"http://a": "desc:" + strings.Repeat("a", 20)}}
	results := &memResultSink{err: errors.New("disk full")}
	errSink := &memErrorSink{}
	tracker := newTestTracker(1)
	w := NewWorker(fetcher, markerExtractor{}, zeroThrottle{}, results, errSink, tracker, 10, zap.NewNop())

	// Must not panic or write the failed flush to the error sink.
	w.ProcessBatch(context.Background(), []WorkItem{{ID: 1, URL: "http://a"}})

	require.Empty(t, errSink.rows)
	require.Equal(t, 1, tracker.Scraped())
}
