// Package metric manages Prometheus metric registration and exposition for
// nano-cache. Each cache instance that opts into metrics registers its
// counters and gauges here under a caller-chosen prefix, so several caches
// can share one registry without name collisions.
package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gkindel/nano-cache/errors"
)

// Registrar defines the interface for registering cache-specific metrics
type Registrar interface {
	RegisterCounter(cacheName, metricName string, counter prometheus.Counter) error
	RegisterGauge(cacheName, metricName string, gauge prometheus.Gauge) error
	Unregister(cacheName, metricName string) bool
}

// Registry manages the registration and lifecycle of metrics
type Registry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry backed by a private
// prometheus.Registry with Go runtime and process collectors attached.
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()
	prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for a cache
func (r *Registry) RegisterCounter(cacheName, metricName string, counter prometheus.Counter) error {
	return r.register(cacheName, metricName, counter, "RegisterCounter")
}

// RegisterGauge registers a gauge metric for a cache
func (r *Registry) RegisterGauge(cacheName, metricName string, gauge prometheus.Gauge) error {
	return r.register(cacheName, metricName, gauge, "RegisterGauge")
}

func (r *Registry) register(cacheName, metricName string, collector prometheus.Collector, op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", cacheName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for cache %s", metricName, cacheName),
			"Registry", op, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "Registry", op,
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapFatal(err, "Registry", op,
			"failed to register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry. Returns true if the metric
// existed and was removed.
func (r *Registry) Unregister(cacheName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", cacheName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	r.prometheusRegistry.Unregister(collector)
	delete(r.registeredMetrics, key)
	return true
}
