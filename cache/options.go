package cache

import (
	"log/slog"

	"github.com/gkindel/nano-cache/codec"
	"github.com/gkindel/nano-cache/metric"
	"github.com/gkindel/nano-cache/pkg/sched"
	"github.com/gkindel/nano-cache/pkg/timestamp"
)

// Clock supplies the current time in Unix milliseconds. The cache takes its
// notion of time exclusively from here, so tests can substitute a manual
// clock to drive expiration and eviction deterministically.
type Clock interface {
	Now() int64
}

// systemClock is the default Clock, backed by the wall clock.
type systemClock struct{}

func (systemClock) Now() int64 {
	return timestamp.Now()
}

// EvictCallback is called when an entry is removed by expiration or by the
// eviction engine (not by an explicit Delete or Clear). It runs while the
// cache lock is held and must not call back into the cache.
type EvictCallback func(key string, bytes int64)

// Option configures cache behavior using the functional options pattern.
type Option func(*cacheOptions)

// cacheOptions holds internal configuration for cache instances.
type cacheOptions struct {
	serializer codec.Serializer
	compressor codec.Compressor
	clock      Clock
	scheduler  sched.Scheduler
	logger     *slog.Logger

	// metricsReg is optional - if provided, cache stats are also exposed as
	// Prometheus metrics under metricsPrefix.
	metricsReg    *metric.Registry
	metricsPrefix string

	evictCallback EvictCallback
}

// WithSerializer replaces the default JSON serializer.
func WithSerializer(s codec.Serializer) Option {
	return func(opts *cacheOptions) {
		if s != nil {
			opts.serializer = s
		}
	}
}

// WithCompressor replaces the default raw-deflate compressor. The compressor
// only runs for entries written with compression enabled.
func WithCompressor(c codec.Compressor) Option {
	return func(opts *cacheOptions) {
		if c != nil {
			opts.compressor = c
		}
	}
}

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(clock Clock) Option {
	return func(opts *cacheOptions) {
		if clock != nil {
			opts.clock = clock
		}
	}
}

// WithScheduler replaces the deferred-sweep scheduler.
func WithScheduler(s sched.Scheduler) Option {
	return func(opts *cacheOptions) {
		if s != nil {
			opts.scheduler = s
		}
	}
}

// WithLogger sets the structured logger used for eviction and sweep events.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *cacheOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics export for cache statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry *metric.Registry, prefix string) Option {
	return func(opts *cacheOptions) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictionCallback sets a callback invoked for expired and evicted
// entries.
func WithEvictionCallback(callback EvictCallback) Option {
	return func(opts *cacheOptions) {
		opts.evictCallback = callback
	}
}

// applyOptions applies functional options over the defaults.
func applyOptions(options ...Option) *cacheOptions {
	opts := &cacheOptions{
		serializer: codec.NewJSON(),
		compressor: codec.NewDeflate(),
		clock:      systemClock{},
		scheduler:  sched.NewDebounce(0),
		logger:     slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
