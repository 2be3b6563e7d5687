package cache

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkindel/nano-cache/metric"
)

func TestMetricsExport(t *testing.T) {
	reg := metric.NewRegistry()
	c, _, _ := newTestCache(t, Config{}, WithMetrics(reg, "primary"))

	_, err := c.Set("k", "v")
	require.NoError(t, err)
	_, found, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	_, found, err = c.Get("absent")
	require.NoError(t, err)
	require.False(t, found)

	srv := metric.NewServer(0, "", reg)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `nanocache_cache_hits_total{cache="primary"} 1`)
	assert.Contains(t, text, `nanocache_cache_misses_total{cache="primary"} 1`)
	assert.Contains(t, text, `nanocache_cache_sets_total{cache="primary"} 1`)
	assert.Contains(t, text, `nanocache_cache_entries{cache="primary"} 1`)
}

func TestMetricsDuplicatePrefixRejected(t *testing.T) {
	reg := metric.NewRegistry()

	_, _, _ = newTestCache(t, Config{}, WithMetrics(reg, "dup"))
	_, err := New(Config{}, WithMetrics(reg, "dup"))
	require.Error(t, err, "two caches cannot share a metrics prefix on one registry")
}

func TestMetricsDistinctPrefixesCoexist(t *testing.T) {
	reg := metric.NewRegistry()

	a, _, _ := newTestCache(t, Config{}, WithMetrics(reg, "a"))
	b, _, _ := newTestCache(t, Config{}, WithMetrics(reg, "b"))

	_, err := a.Set("k", 1)
	require.NoError(t, err)
	_, err = b.Set("k", 2)
	require.NoError(t, err)
}

func TestMetricsOmittedWithoutOption(t *testing.T) {
	c, _, _ := newTestCache(t, Config{})
	_, err := c.Set("k", "v")
	require.NoError(t, err)
	// Stats are still collected even when no registry is attached.
	assert.Equal(t, int64(1), c.Statistics().Sets())
}
