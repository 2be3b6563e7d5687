// Package timestamp provides standardized Unix timestamp handling.
//
// nano-cache stores every timestamp (write time, access time, absolute
// expiry) as int64 milliseconds since the Unix epoch. All expiration and
// eviction arithmetic (entry age, hit rate, protection window) happens in
// that unit, so the package is the single place where time.Time, duration,
// and caller-supplied date-like values are converted.
//
// Zero Value Semantics:
//   - A timestamp value of 0 means "not set"
//   - Functions handle zero values gracefully, returning appropriate defaults
package timestamp

import (
	"strconv"
	"time"
)

// Now returns the current time as Unix milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// ToUnixMs converts a time.Time to Unix milliseconds.
func ToUnixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromUnixMs converts Unix milliseconds to time.Time.
// Returns zero time if the timestamp is 0.
func FromUnixMs(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// Format converts Unix milliseconds to an RFC3339 string for display.
// Returns empty string if the timestamp is 0.
func Format(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// Parse converts a date-like value to Unix milliseconds. It accepts the
// forms a caller may plausibly hand over as an absolute expiry:
//
//   - time.Time
//   - int64 / int / float64 epoch values; values above 1e12 are taken as
//     milliseconds, smaller positive values as seconds
//   - string: RFC3339, RFC3339 with nanoseconds, or a numeric epoch
//
// Returns 0 for anything it cannot interpret.
func Parse(v any) int64 {
	switch t := v.(type) {
	case time.Time:
		return ToUnixMs(t)
	case int64:
		return normalizeEpoch(t)
	case int:
		return normalizeEpoch(int64(t))
	case float64:
		return normalizeEpoch(int64(t))
	case string:
		return parseString(t)
	default:
		return 0
	}
}

// normalizeEpoch interprets a raw epoch number as milliseconds or seconds.
// The 1e12 cutoff corresponds to Sep 2001 in ms and ~33658 AD in seconds,
// so any realistic expiry lands on the intended side.
func normalizeEpoch(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n > 1e12 {
		return n
	}
	return n * 1000
}

func parseString(s string) int64 {
	if s == "" {
		return 0
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ToUnixMs(t)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return ToUnixMs(t)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return normalizeEpoch(n)
	}
	return 0
}
