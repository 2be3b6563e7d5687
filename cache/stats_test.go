package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounters(t *testing.T) {
	s := NewStatistics()

	s.Hit()
	s.Hit()
	s.Hit()
	s.Miss()
	s.Set()
	s.Set()
	s.Delete()
	s.Eviction()

	assert.Equal(t, int64(3), s.Hits())
	assert.Equal(t, int64(1), s.Misses())
	assert.Equal(t, int64(2), s.Sets())
	assert.Equal(t, int64(1), s.Deletes())
	assert.Equal(t, int64(1), s.Evictions())
	assert.Equal(t, 0.75, s.HitRatio())
}

func TestStatisticsHitRatioNoTraffic(t *testing.T) {
	s := NewStatistics()
	assert.Equal(t, 0.0, s.HitRatio())
}

func TestStatisticsUsageHighWater(t *testing.T) {
	s := NewStatistics()

	s.UpdateUsage(3, 300)
	s.UpdateUsage(5, 500)
	s.UpdateUsage(1, 100)

	assert.Equal(t, int64(1), s.Entries())
	assert.Equal(t, int64(100), s.Bytes())
	assert.Equal(t, int64(500), s.MaxBytes(), "high-water mark survives shrinking")
}

func TestStatisticsSummary(t *testing.T) {
	s := NewStatistics()
	s.Hit()
	s.Miss()
	s.Set()
	s.UpdateUsage(1, 42)

	sum := s.Summary()
	assert.Equal(t, int64(1), sum.Hits)
	assert.Equal(t, int64(1), sum.Misses)
	assert.Equal(t, int64(1), sum.Sets)
	assert.Equal(t, int64(1), sum.Entries)
	assert.Equal(t, int64(42), sum.Bytes)
	assert.Equal(t, int64(42), sum.MaxBytes)
	assert.Equal(t, 0.5, sum.HitRatio)
	assert.GreaterOrEqual(t, sum.Uptime.Nanoseconds(), int64(0))
}

func TestStatisticsConcurrentUpdates(t *testing.T) {
	s := NewStatistics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Hit()
				s.Miss()
				s.UpdateUsage(int64(j), int64(j))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8000), s.Hits())
	assert.Equal(t, int64(8000), s.Misses())
	assert.Equal(t, int64(999), s.MaxBytes())
}

func TestCacheStatisticsLifecycle(t *testing.T) {
	c, _, _ := newTestCache(t, Config{})

	_, err := c.Set("k", "v")
	require.NoError(t, err)
	_, found, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	_, found, err = c.Get("absent")
	require.NoError(t, err)
	require.False(t, found)
	_, _, err = c.Delete("k")
	require.NoError(t, err)

	sum := c.Statistics().Summary()
	assert.Equal(t, int64(1), sum.Hits)
	assert.Equal(t, int64(1), sum.Misses)
	assert.Equal(t, int64(1), sum.Sets)
	assert.Equal(t, int64(1), sum.Deletes)
	assert.Equal(t, int64(0), sum.Entries)
	assert.Equal(t, int64(0), sum.Bytes)
	assert.Greater(t, sum.MaxBytes, int64(0))
}
