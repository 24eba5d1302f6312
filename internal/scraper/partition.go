package scraper

// Partition splits items into exactly n batches whose sizes differ by at most
// one, preserving input order. When len(items) < n some batches are empty;
// workers treat an empty batch as a no-op.
func Partition(items []WorkItem, n int) [][]WorkItem {
	if n < 1 {
		n = 1
	}
	batches := make([][]WorkItem, n)
	size := len(items) / n
	rem := len(items) % n
	start := 0
	for i := range batches {
		end := start + size
		if i < rem {
			end++
		}
		batches[i] = items[start:end:end]
		start = end
	}
	return batches
}

// BatchCount derives how many batches to cut the input into. Each worker
// receives several small batches so result flushes and progress logging fire
// at finer granularity than one batch per worker would allow. The count is
// clamped to the item total so no batch starts empty.
func BatchCount(total, workers, batchesPerWorker int) int {
	if total <= 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if batchesPerWorker < 1 {
		batchesPerWorker = 1
	}
	n := workers * batchesPerWorker
	if n > total {
		n = total
	}
	return n
}
