package cache

import (
	"time"

	"github.com/gkindel/nano-cache/pkg/timestamp"
)

// SetOption overrides one instance default for a single Set call. Precedence
// is fixed: per-call options win over the instance Config, which wins over
// the package defaults. Merging is field-by-field — an option touches only
// the field it names.
type SetOption func(*writeOptions)

// writeOptions is the merged per-write configuration. It starts as a copy of
// the instance defaults and is then mutated by the caller's SetOptions.
type writeOptions struct {
	ttl       time.Duration
	limit     int64
	compress  bool
	cost      float64
	expiresAt int64 // absolute expiry in Unix ms; wins over ttl when positive
}

// WithTTL sets this entry's lifetime. Zero removes any default TTL.
func WithTTL(ttl time.Duration) SetOption {
	return func(w *writeOptions) {
		w.ttl = ttl
	}
}

// WithLimit sets this entry's maximum hit count before forced expiry. Zero
// removes any default limit.
func WithLimit(limit int64) SetOption {
	return func(w *writeOptions) {
		w.limit = limit
	}
}

// WithCompression enables or disables compression for this entry,
// overriding the instance default.
func WithCompression(enabled bool) SetOption {
	return func(w *writeOptions) {
		w.compress = enabled
	}
}

// WithCost sets this entry's importance multiplier for StrategyWeighted.
func WithCost(cost float64) SetOption {
	return func(w *writeOptions) {
		if cost >= 0 {
			w.cost = cost
		}
	}
}

// WithExpiry sets an absolute expiry point, which overrides any TTL when
// positive. It accepts a time.Time, an epoch value (seconds or
// milliseconds), or an RFC3339 string; values that cannot be interpreted
// leave the expiry unset.
func WithExpiry(v any) SetOption {
	return func(w *writeOptions) {
		w.expiresAt = timestamp.Parse(v)
	}
}

// WithExpiryAt sets an absolute expiry point from a time.Time. A zero time
// leaves the expiry unset.
func WithExpiryAt(t time.Time) SetOption {
	return func(w *writeOptions) {
		w.expiresAt = timestamp.ToUnixMs(t)
	}
}

// writeDefaults derives the starting writeOptions from the instance Config.
func (c *Cache) writeDefaults() writeOptions {
	return writeOptions{
		ttl:      c.cfg.TTL,
		limit:    c.cfg.Limit,
		compress: c.cfg.Compress,
		cost:     c.cfg.Cost,
	}
}
