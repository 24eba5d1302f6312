package scraper

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// BatchProcessor is the unit of work the Scheduler dispatches. Worker
// satisfies it; tests substitute fakes.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, batch []WorkItem)
}

// Scheduler owns a bounded pool of goroutines that drain the batch queue.
// It never cancels the pool on item failures; it only returns after every
// batch has been attempted.
type Scheduler struct {
	workers int
	proc    BatchProcessor
	logger  *zap.Logger
}

// NewScheduler builds a Scheduler with the given pool size.
func NewScheduler(workers int, proc BatchProcessor, logger *zap.Logger) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{workers: workers, proc: proc, logger: logger}
}

// Run dispatches every batch to the pool and blocks until all of them have
// completed. An empty batch list returns immediately without starting any
// goroutines.
func (s *Scheduler) Run(ctx context.Context, batches [][]WorkItem) {
	if len(batches) == 0 {
		return
	}

	slots := s.workers
	if slots > len(batches) {
		slots = len(batches)
	}
	s.logger.Info("dispatching batches", zap.Int("batches", len(batches)), zap.Int("workers", slots))

	queue := make(chan []WorkItem)
	var wg sync.WaitGroup
	for i := 0; i < slots; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range queue {
				s.proc.ProcessBatch(ctx, batch)
			}
		}()
	}
	for _, batch := range batches {
		queue <- batch
	}
	close(queue)
	wg.Wait()
}
