package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit bounds fan-out to the backend when callers have no better
// figure.
const DefaultLimit = 4

// ForEach calls fn for every index in [0, n) with at most limit calls in
// flight. The first error cancels the context passed to the remaining calls
// and is returned once all calls have finished.
func ForEach(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(ctx, i)
		})
	}
	return g.Wait()
}
