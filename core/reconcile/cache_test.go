package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_HitAndExpiry(t *testing.T) {
	c := NewResultCache(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	compute := func(ctx context.Context) (*Result, error) {
		calls++
		return &Result{TotalUniqueMatches: calls}, nil
	}

	res, cached, err := c.GetOrCompute(context.Background(), "ds-1", compute)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, res.TotalUniqueMatches)

	res, cached, err = c.GetOrCompute(context.Background(), "ds-1", compute)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 1, res.TotalUniqueMatches)

	got, ok := c.fresh("ds-1")
	require.True(t, ok)
	assert.Same(t, res, got)

	now = now.Add(2 * time.Minute)
	_, ok = c.fresh("ds-1")
	assert.False(t, ok)

	res, cached, err = c.GetOrCompute(context.Background(), "ds-1", compute)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, res.TotalUniqueMatches)
}

func TestResultCache_ZeroTTLDisables(t *testing.T) {
	c := NewResultCache(0)
	calls := 0
	compute := func(ctx context.Context) (*Result, error) {
		calls++
		return &Result{}, nil
	}

	for i := 0; i < 3; i++ {
		_, cached, err := c.GetOrCompute(context.Background(), "ds", compute)
		require.NoError(t, err)
		assert.False(t, cached)
	}
	assert.Equal(t, 3, calls)
}

func TestResultCache_ErrorNotCached(t *testing.T) {
	c := NewResultCache(time.Minute)
	boom := errors.New("boom")

	_, _, err := c.GetOrCompute(context.Background(), "ds", func(ctx context.Context) (*Result, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	_, ok := c.fresh("ds")
	assert.False(t, ok)
}

func TestResultCache_Invalidate(t *testing.T) {
	c := NewResultCache(time.Minute)
	_, _, err := c.GetOrCompute(context.Background(), "ds", func(ctx context.Context) (*Result, error) {
		return &Result{}, nil
	})
	require.NoError(t, err)

	c.Invalidate("ds")
	_, ok := c.fresh("ds")
	assert.False(t, ok)
}

func TestResultCache_ConcurrentMissesShareComputation(t *testing.T) {
	c := NewResultCache(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	compute := func(ctx context.Context) (*Result, error) {
		calls.Add(1)
		<-release
		return &Result{}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := c.GetOrCompute(context.Background(), "ds", compute)
			assert.NoError(t, err)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// stragglers that arrive after the first call finished hit the cache
	assert.Equal(t, int32(1), calls.Load())
}
