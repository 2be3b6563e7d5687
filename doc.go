// Package nanocache is a byte-budgeted in-process key/value cache with
// per-entry expiration and pluggable eviction strategies.
//
// # Overview
//
// The module bounds cache memory and staleness through four independent
// mechanisms:
//
//   - Per-entry TTL: a relative lifetime fixed into an absolute expiry at
//     write time.
//   - Per-entry hit limits: an entry expires once it has served a configured
//     number of reads.
//   - A global byte budget: after every write, entries are evicted until the
//     running byte total is back under the budget.
//   - A protection window: recently written entries are de-prioritized for
//     eviction (but not immune) while younger than the window.
//
// Under byte pressure, unprotected entries are ranked by one of three
// heuristic strategies: least-recently-read first (oldest_access), lowest
// hits-per-millisecond first (lowest_rate), or lowest cost-weighted rate
// first (weighted, the default), where cost is a caller-assigned importance
// multiplier.
//
// # Architecture
//
//	┌───────────────────────────────┐
//	│          cache.Cache          │  Set / Get / Info / Delete /
//	│  (store, expiry, eviction)    │  Clear / Stats
//	└───────────────────────────────┘
//	      ↓ encodes via        ↓ schedules via
//	┌───────────────┐   ┌───────────────┐
//	│     codec     │   │   pkg/sched   │  debounced expiry sweep
//	│ JSON, deflate,│   └───────────────┘
//	│    brotli     │
//	└───────────────┘
//
// Supporting packages: errors (classified error handling), metric
// (Prometheus registry and exposition), pkg/timestamp (canonical Unix-ms
// timestamps).
//
// # Quick Start
//
//	c, err := cache.New(cache.Config{
//		MaxBytes: 64 << 20,
//		TTL:      5 * time.Minute,
//		Compress: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	if _, err := c.Set("user:42", profile); err != nil {
//		return err
//	}
//	value, ok, err := c.Get("user:42")
//
// Values are serialized (JSON by default) and optionally compressed before
// storage, so the byte budget reflects real stored bytes, not estimates.
package nanocache
