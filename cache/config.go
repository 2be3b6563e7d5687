package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gkindel/nano-cache/errors"
)

// Strategy selects the eviction ranking metric used under byte pressure.
type Strategy string

const (
	// StrategyOldestAccess evicts least-recently-read entries first.
	StrategyOldestAccess Strategy = "oldest_access"

	// StrategyLowestRate evicts entries with the lowest hits-per-millisecond
	// since their last write first.
	StrategyLowestRate Strategy = "lowest_rate"

	// StrategyWeighted evicts entries with the lowest cost-weighted hit rate
	// first, letting a caller-assigned cost shield valuable but infrequently
	// read entries relative to cheap ones.
	StrategyWeighted Strategy = "weighted"
)

// DefaultProtection is the eviction protection window applied when Config
// leaves Protection unset.
const DefaultProtection = 60 * time.Second

// Config contains construction-time defaults for a cache instance. TTL,
// Limit, Compress, and Cost can be overridden per Set call; MaxBytes,
// Protection, and Strategy are instance-wide.
type Config struct {
	// TTL is the default entry lifetime. Zero means entries do not expire
	// by age.
	TTL time.Duration `json:"ttl"`

	// Limit is the default maximum hit count before forced expiry. Zero
	// means unlimited reads.
	Limit int64 `json:"limit"`

	// MaxBytes is the cache-wide byte budget. Zero means unbounded.
	MaxBytes int64 `json:"max_bytes"`

	// Compress runs values through the compressor before storing.
	Compress bool `json:"compress"`

	// Protection is the window after a write during which an entry is
	// shielded (softly, not absolutely) from eviction. Zero applies
	// DefaultProtection; a negative value disables the window.
	Protection time.Duration `json:"protection"`

	// Strategy is the eviction ranking metric. Empty applies
	// StrategyWeighted.
	Strategy Strategy `json:"strategy"`

	// Cost is the default per-entry importance multiplier used by
	// StrategyWeighted. Zero applies 1.
	Cost float64 `json:"cost"`
}

// DefaultConfig returns the default cache configuration: unbounded bytes, no
// expiry, no compression, weighted eviction with a 60s protection window.
func DefaultConfig() Config {
	return Config{
		Protection: DefaultProtection,
		Strategy:   StrategyWeighted,
		Cost:       1,
	}
}

// withDefaults fills unset fields with their documented defaults.
func (c Config) withDefaults() Config {
	if c.Protection == 0 {
		c.Protection = DefaultProtection
	}
	if c.Strategy == "" {
		c.Strategy = StrategyWeighted
	}
	if c.Cost == 0 {
		c.Cost = 1
	}
	return c
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.TTL < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("ttl must not be negative, got %v", c.TTL))
	}
	if c.Limit < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("limit must not be negative, got %d", c.Limit))
	}
	if c.MaxBytes < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("max_bytes must not be negative, got %d", c.MaxBytes))
	}
	if c.Cost < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("cost must not be negative, got %v", c.Cost))
	}

	switch c.Strategy {
	case "", StrategyOldestAccess, StrategyLowestRate, StrategyWeighted:
	default:
		return errors.WrapInvalid(errors.ErrUnknownStrategy, "Config", "Validate",
			fmt.Sprintf("unknown eviction strategy: %s", c.Strategy))
	}

	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Config to support
// duration strings (e.g. "1h", "5m", "30s") in addition to nanosecond
// integers for TTL and Protection.
func (c *Config) UnmarshalJSON(data []byte) error {
	// Use an alias to avoid infinite recursion
	type Alias Config

	aux := &struct {
		TTL        json.RawMessage `json:"ttl,omitempty"`
		Protection json.RawMessage `json:"protection,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.TTL) > 0 {
		ttl, err := parseDurationField(aux.TTL, "ttl")
		if err != nil {
			return err
		}
		c.TTL = ttl
	}

	if len(aux.Protection) > 0 {
		protection, err := parseDurationField(aux.Protection, "protection")
		if err != nil {
			return err
		}
		c.Protection = protection
	}

	return nil
}

// parseDurationField parses a JSON duration field that can be either an
// integer (nanoseconds) or a duration string like "1h", "5m", "30s".
func parseDurationField(data json.RawMessage, fieldName string) (time.Duration, error) {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		duration, err := time.ParseDuration(str)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for %s: %w", fieldName, err)
		}
		return duration, nil
	}

	var nsec int64
	if err := json.Unmarshal(data, &nsec); err != nil {
		return 0, fmt.Errorf("field %s must be either a duration string (e.g. '1h') or integer nanoseconds", fieldName)
	}
	return time.Duration(nsec), nil
}
