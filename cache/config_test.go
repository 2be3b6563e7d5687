package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkindel/nano-cache/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, time.Duration(0), cfg.TTL)
	assert.Equal(t, int64(0), cfg.Limit)
	assert.Equal(t, int64(0), cfg.MaxBytes)
	assert.False(t, cfg.Compress)
	assert.Equal(t, DefaultProtection, cfg.Protection)
	assert.Equal(t, StrategyWeighted, cfg.Strategy)
	assert.Equal(t, 1.0, cfg.Cost)

	require.NoError(t, cfg.Validate())
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultProtection, cfg.Protection)
	assert.Equal(t, StrategyWeighted, cfg.Strategy)
	assert.Equal(t, 1.0, cfg.Cost)

	// Explicit values survive.
	cfg = Config{
		Protection: -time.Millisecond,
		Strategy:   StrategyLowestRate,
		Cost:       2.5,
	}.withDefaults()
	assert.Equal(t, -time.Millisecond, cfg.Protection)
	assert.Equal(t, StrategyLowestRate, cfg.Strategy)
	assert.Equal(t, 2.5, cfg.Cost)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", Config{TTL: time.Minute, MaxBytes: 1024, Strategy: StrategyOldestAccess}, nil},
		{"valid empty strategy", Config{}, nil},
		{"negative ttl", Config{TTL: -time.Second}, errors.ErrInvalidConfig},
		{"negative limit", Config{Limit: -1}, errors.ErrInvalidConfig},
		{"negative max_bytes", Config{MaxBytes: -1}, errors.ErrInvalidConfig},
		{"negative cost", Config{Cost: -0.5}, errors.ErrInvalidConfig},
		{"unknown strategy", Config{Strategy: "round_robin"}, errors.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestConfigUnmarshalJSON(t *testing.T) {
	t.Run("duration strings", func(t *testing.T) {
		var cfg Config
		require.NoError(t, json.Unmarshal([]byte(
			`{"ttl":"5m","protection":"30s","max_bytes":65536,"strategy":"lowest_rate","cost":2}`), &cfg))

		assert.Equal(t, 5*time.Minute, cfg.TTL)
		assert.Equal(t, 30*time.Second, cfg.Protection)
		assert.Equal(t, int64(65536), cfg.MaxBytes)
		assert.Equal(t, StrategyLowestRate, cfg.Strategy)
		assert.Equal(t, 2.0, cfg.Cost)
	})

	t.Run("nanosecond integers", func(t *testing.T) {
		var cfg Config
		require.NoError(t, json.Unmarshal([]byte(`{"ttl":1000000000,"protection":500000000}`), &cfg))

		assert.Equal(t, time.Second, cfg.TTL)
		assert.Equal(t, 500*time.Millisecond, cfg.Protection)
	})

	t.Run("invalid duration string", func(t *testing.T) {
		var cfg Config
		err := json.Unmarshal([]byte(`{"ttl":"five minutes"}`), &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid duration string for ttl")
	})

	t.Run("wrong type", func(t *testing.T) {
		var cfg Config
		err := json.Unmarshal([]byte(`{"protection":true}`), &cfg)
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		in := Config{TTL: time.Hour, Protection: time.Minute, Strategy: StrategyWeighted, Cost: 1}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out Config
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}
