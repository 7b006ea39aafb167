// Package workerpool runs a bounded set of goroutines over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Map invokes fn for every index of items using at most workers goroutines.
// The first error cancels the remaining work and is returned to the caller.
func Map[T any](ctx context.Context, workers int, items []T, fn func(context.Context, int, T) error) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, idx, items[idx]); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
