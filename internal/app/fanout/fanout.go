// Package fanout spreads work over a fixed pool of workers and keeps the
// results in input order. rosterctl uses it for bulk employee imports.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value when Err is nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item on at most workers goroutines and returns one
// Result per item at the item's index. Values of workers below 1 mean 1.
//
// Once ctx is done no new item is started; each unstarted item gets
// ctx.Err(). Items already in fn run to completion, so fn should watch ctx
// itself. Run returns after every started call has returned.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for range max(1, min(workers, len(items))) {
		wg.Go(func() {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}

feed:
	for i := range items {
		select {
		case indexes <- i:
		case <-ctx.Done():
			for j := i; j < len(items); j++ {
				results[j].Err = ctx.Err()
			}
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	return results
}

// Join folds the failures into one error, each prefixed with its item
// index. It returns nil when nothing failed.
func Join[R any](results []Result[R]) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Succeeded returns the successful values in input order.
func Succeeded[R any](results []Result[R]) []R {
	out := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Value)
		}
	}
	return out
}
