// Package cache implements the nano-cache engine: a byte-budgeted key/value
// store with per-entry TTL, per-entry hit limits, and heuristic eviction.
//
// # Lifecycle of an entry
//
// Set encodes the value (JSON by default), optionally compresses it, and
// stores the resulting bytes together with metadata fixed at write time:
// the absolute expiry (derived once from TTL or an explicit expiry point),
// the hit limit, and the cost. Only the hit count and access time change
// afterwards; overwriting a key replaces the entry wholesale.
//
// An entry leaves the cache one of four ways: an explicit Delete, a Clear,
// the expiration checker (TTL or hit limit reached), or the eviction engine
// reclaiming bytes after a write pushed the cache over budget.
//
// # Eviction
//
// When the byte total exceeds MaxBytes after a write, every entry is scored
// with a protection value — positive while younger than the protection
// window, zero afterwards — and the configured strategy metric. Entries are
// removed lowest-protection-first, breaking ties by lowest metric, until the
// cache is back under budget. Protection is a soft priority: recently
// written entries go last, not never.
//
// The three strategies rank survivors by access recency (oldest_access),
// hits per millisecond since write (lowest_rate), or cost-weighted rate
// (weighted). The rate denominator is age since write, not since last
// access; that bias is part of the contract.
//
// # Expiration
//
// Expiry is enforced lazily: on every Get, over all keys by a debounced
// background sweep scheduled after each successful read, and before every
// eviction pass. There is no per-entry timer.
//
// # Observability
//
// Statistics are always collected (see Statistics). WithMetrics additionally
// exports them as Prometheus metrics through a metric.Registry. Hits and
// misses are process-lifetime counters: Clear empties the cache but does not
// reset them.
package cache
