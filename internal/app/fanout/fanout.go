// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. A fixed pool of workers drains the input
// slice; callers block until every item was handled or skipped.
package fanout

import (
	"context"
	"sync"
)

// Each calls fn for every item using at most maxWorkers goroutines and
// returns the number of items skipped because ctx ended before a worker
// picked them up. Items already handed to fn run to completion; fn is
// responsible for honouring ctx itself.
//
// maxWorkers below 1 is treated as 1. A single worker (or a single item)
// runs inline on the calling goroutine, preserving input order.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T)) int {
	if len(items) == 0 {
		return 0
	}
	workers := min(max(maxWorkers, 1), len(items))

	if workers == 1 {
		for i, it := range items {
			if ctx.Err() != nil {
				return len(items) - i
			}
			fn(ctx, it)
		}
		return 0
	}

	work := make(chan T)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for it := range work {
				fn(ctx, it)
			}
		}()
	}

	skipped := 0
feed:
	for i, it := range items {
		select {
		case work <- it:
		case <-ctx.Done():
			skipped = len(items) - i
			break feed
		}
	}
	close(work)
	wg.Wait()
	return skipped
}
