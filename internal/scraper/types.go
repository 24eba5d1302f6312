// Package scraper implements the concurrent fetch-extract-record pipeline.
package scraper

import (
	"context"
	"time"
)

// WorkItem is one (id, URL) unit of work read from the input file. It is
// immutable and consumed exactly once by exactly one worker.
type WorkItem struct {
	ID  int
	URL string
}

// Outcome records the successful processing of a single WorkItem. When no
// usable description was found HasDescription is false and Description is
// empty; that still counts as success.
type Outcome struct {
	ID             int
	Description    string
	HasDescription bool
}

// Fetcher retrieves the raw page body for a URL, presenting the supplied
// User-Agent. Non-success responses and transport failures return an error.
type Fetcher interface {
	Fetch(ctx context.Context, url, userAgent string) ([]byte, error)
}

// Extractor derives the description text from a fetched page body. The second
// return value reports whether a description region was present at all.
type Extractor interface {
	Extract(body []byte) (string, bool)
}

// Throttle produces the per-request delay and identity header used to avoid
// fixed-interval request patterns.
type Throttle interface {
	Delay() time.Duration
	UserAgent() string
}

// ResultSink receives successful outcomes, one batch per call.
type ResultSink interface {
	Append(outcomes []Outcome) error
}

// ErrorSink receives one row per failed item.
type ErrorSink interface {
	Append(id int, url, message string) error
}
