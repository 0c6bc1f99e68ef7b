package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach_VisitsEveryIndex(t *testing.T) {
	results := make([]int, 10)
	err := ForEach(context.Background(), 3, len(results), func(_ context.Context, i int) error {
		results[i] = i * i
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, results)
}

func TestForEach_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	err := ForEach(context.Background(), 2, 8, func(context.Context, int) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestForEach_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), 1, 5, func(ctx context.Context, i int) error {
		if i == 2 {
			return boom
		}
		return ctx.Err()
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEach_Empty(t *testing.T) {
	called := false
	err := ForEach(context.Background(), DefaultLimit, 0, func(context.Context, int) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}
