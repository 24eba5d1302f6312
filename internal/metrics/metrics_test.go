package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordingBeforeInitIsNoOp(t *testing.T) {
	// Must not panic even if Init has not run yet in this process. Runs
	// first in this file's source order, before any test calls Init.
	RecordOutcome(ResultDescribed)
	ObserveFetchDuration(time.Second)
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()

	RecordOutcome(ResultError)
	RecordOutcome(ResultError)
	RecordOutcome(ResultNoDescription)
	ObserveFetchDuration(250 * time.Millisecond)

	require.InDelta(t, 2, testutil.ToFloat64(itemsTotal.WithLabelValues(ResultError)), 0.001)
	require.InDelta(t, 1, testutil.ToFloat64(itemsTotal.WithLabelValues(ResultNoDescription)), 0.001)
}
