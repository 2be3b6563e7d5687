package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkindel/nano-cache/errors"
)

func newTestCounter(name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nanocache",
		Name:      name,
		Help:      "test counter",
	})
}

func TestRegisterAndUnregisterCounter(t *testing.T) {
	r := NewRegistry()

	c := newTestCounter("hits_total")
	require.NoError(t, r.RegisterCounter("primary", "hits", c))

	assert.True(t, r.Unregister("primary", "hits"))
	assert.False(t, r.Unregister("primary", "hits"))
}

func TestRegisterDuplicateKeyFails(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.RegisterCounter("primary", "hits", newTestCounter("hits_a_total")))

	err := r.RegisterCounter("primary", "hits", newTestCounter("hits_b_total"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterPrometheusConflictFails(t *testing.T) {
	r := NewRegistry()

	// Same collector name under different registry keys still collides
	// inside Prometheus itself.
	require.NoError(t, r.RegisterCounter("a", "hits", newTestCounter("hits_total")))

	err := r.RegisterCounter("b", "hits", newTestCounter("hits_total"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterGauge(t *testing.T) {
	r := NewRegistry()

	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nanocache",
		Name:      "bytes",
		Help:      "test gauge",
	})
	require.NoError(t, r.RegisterGauge("primary", "bytes", g))
	g.Set(1024)
}

func TestServerHandlerServesMetrics(t *testing.T) {
	r := NewRegistry()
	c := newTestCounter("served_total")
	require.NoError(t, r.RegisterCounter("primary", "served", c))
	c.Inc()

	srv := NewServer(0, "", r)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nanocache_served_total 1")
}

func TestServerDefaults(t *testing.T) {
	srv := NewServer(0, "", NewRegistry())
	assert.Equal(t, "http://localhost:9090/metrics", srv.Address())
}
