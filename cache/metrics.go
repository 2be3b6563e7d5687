package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gkindel/nano-cache/metric"
)

// cacheMetrics holds Prometheus metrics for cache operations.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	deletes   prometheus.Counter
	evictions prometheus.Counter

	entries prometheus.Gauge
	bytes   prometheus.Gauge
}

func newCounter(name, help, prefix string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "nanocache",
		Subsystem:   "cache",
		Name:        name,
		ConstLabels: prometheus.Labels{"cache": prefix},
		Help:        help,
	})
}

func newGauge(name, help, prefix string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "nanocache",
		Subsystem:   "cache",
		Name:        name,
		ConstLabels: prometheus.Labels{"cache": prefix},
		Help:        help,
	})
}

// newCacheMetrics creates and registers cache metrics with the provided
// registry.
func newCacheMetrics(registry *metric.Registry, prefix string) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits:      newCounter("hits_total", "Total number of cache hits", prefix),
		misses:    newCounter("misses_total", "Total number of cache misses", prefix),
		sets:      newCounter("sets_total", "Total number of cache set operations", prefix),
		deletes:   newCounter("deletes_total", "Total number of cache delete operations", prefix),
		evictions: newCounter("evictions_total", "Total number of expired and evicted entries", prefix),
		entries:   newGauge("entries", "Current number of entries in cache", prefix),
		bytes:     newGauge("bytes", "Current stored byte total", prefix),
	}

	if err := registry.RegisterCounter(prefix, "cache_hits", m.hits); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_misses", m.misses); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_sets", m.sets); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_deletes", m.deletes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_entries", m.entries); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_bytes", m.bytes); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *cacheMetrics) recordHit() {
	m.hits.Inc()
}

func (m *cacheMetrics) recordMiss() {
	m.misses.Inc()
}

func (m *cacheMetrics) recordSet() {
	m.sets.Inc()
}

func (m *cacheMetrics) recordDelete() {
	m.deletes.Inc()
}

func (m *cacheMetrics) recordEviction() {
	m.evictions.Inc()
}

func (m *cacheMetrics) updateUsage(entries int, bytes int64) {
	m.entries.Set(float64(entries))
	m.bytes.Set(float64(bytes))
}
