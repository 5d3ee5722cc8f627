package mover

import "sync"

// defaultMaxConcurrency and defaultBatchSize are spec.md §4.7's stated
// defaults for the mover's semaphore-bounded worker pool.
const (
	defaultMaxConcurrency = 10
	defaultBatchSize      = 100
)

// runBatched processes items in fixed-size batches, each batch bounded by
// a semaphore of maxConcurrency goroutines, calling fn once per item.
// Per-entity ordering within a batch is preserved only in the sense that
// all of a batch completes before the next begins; cross-entity ordering
// inside a batch is unobservable except through fn's own side effects.
func runBatched[T any](items []T, maxConcurrency, batchSize int, fn func(T) error) {
	if maxConcurrency < 1 {
		maxConcurrency = defaultMaxConcurrency
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		sem := make(chan struct{}, maxConcurrency)
		var wg sync.WaitGroup
		for _, item := range batch {
			wg.Add(1)
			sem <- struct{}{}
			go func(it T) {
				defer wg.Done()
				defer func() { <-sem }()
				_ = fn(it)
			}(item)
		}
		wg.Wait()
	}
}
