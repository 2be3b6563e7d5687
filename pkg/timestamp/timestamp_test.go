package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowIsMilliseconds(t *testing.T) {
	before := time.Now().UnixMilli()
	got := Now()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestRoundTrip(t *testing.T) {
	orig := time.Date(2026, 3, 15, 12, 30, 45, 500_000_000, time.UTC)
	ms := ToUnixMs(orig)
	back := FromUnixMs(ms)

	assert.Equal(t, orig.UnixMilli(), back.UnixMilli())
}

func TestZeroValues(t *testing.T) {
	assert.Equal(t, int64(0), ToUnixMs(time.Time{}))
	assert.True(t, FromUnixMs(0).IsZero())
	assert.Equal(t, "", Format(0))
}

func TestFormat(t *testing.T) {
	ms := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli()
	assert.Equal(t, "2026-01-02T03:04:05Z", Format(ms))
}

func TestParse(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	refMs := ref.UnixMilli()

	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"time.Time", ref, refMs},
		{"epoch ms int64", refMs, refMs},
		{"epoch seconds int64", ref.Unix(), refMs},
		{"epoch ms float64", float64(refMs), refMs},
		{"epoch int", int(ref.Unix()), refMs},
		{"rfc3339 string", "2026-06-01T00:00:00Z", refMs},
		{"numeric string ms", "1780272000000", refMs},
		{"numeric string seconds", "1780272000", refMs},
		{"zero time", time.Time{}, 0},
		{"negative", int64(-5), 0},
		{"garbage string", "not a date", 0},
		{"empty string", "", 0},
		{"unsupported type", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}
