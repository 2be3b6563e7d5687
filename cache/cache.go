package cache

import (
	"log/slog"
	"sync"

	"github.com/gkindel/nano-cache/codec"
	"github.com/gkindel/nano-cache/errors"
	"github.com/gkindel/nano-cache/pkg/sched"
)

// Cache is a byte-budgeted in-process key/value store. Values are encoded
// (and optionally compressed) on write, so the byte budget tracks real
// stored bytes. Expiration is checked lazily on read, by a debounced
// background sweep after reads, and before every eviction pass.
//
// A single mutex guards the map, the byte total, and the counters; every
// public operation, and each whole eviction pass, is one critical section.
type Cache struct {
	mu     sync.Mutex
	cfg    Config
	items  map[string]*entry
	bytes  int64 // running total, always equals the sum of entry bytes
	closed bool

	ranker     ranker
	serializer codec.Serializer
	compressor codec.Compressor
	clock      Clock
	sweeper    sched.Scheduler
	logger     *slog.Logger

	stats   *Statistics   // always initialized
	metrics *cacheMetrics // optional Prometheus export
	evictFn EvictCallback // optional
}

// removal reasons, used for stats attribution and logging
const (
	removeDeleted  = "deleted"
	removeReplaced = "replaced"
	removeExpired  = "expired"
	removeEvicted  = "evicted"
)

// New creates a cache with the given configuration. Zero Config fields take
// their documented defaults; see DefaultConfig.
func New(cfg Config, options ...Option) (*Cache, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rk, err := rankerFor(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	opts := applyOptions(options...)

	c := &Cache{
		cfg:        cfg,
		items:      make(map[string]*entry),
		ranker:     rk,
		serializer: opts.serializer,
		compressor: opts.compressor,
		clock:      opts.clock,
		sweeper:    opts.scheduler,
		logger:     opts.logger,
		stats:      NewStatistics(),
		evictFn:    opts.evictCallback,
	}

	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		m, err := newCacheMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Cache", "New", "metrics registration")
		}
		c.metrics = m
	}

	return c, nil
}

// Set stores a value under key, replacing any existing entry, and returns
// the stored (encoded, possibly compressed) bytes. Per-call options override
// the instance defaults for this entry only. After the write, the eviction
// engine runs if the cache is over its byte budget.
//
// The returned slice is the stored buffer and must not be modified.
func (c *Cache) Set(key string, value any, options ...SetOption) ([]byte, error) {
	if key == "" {
		return nil, errors.WrapInvalid(errors.ErrEmptyKey, "Cache", "Set", "validate key")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.WrapFatal(errors.ErrCacheClosed, "Cache", "Set", "write to closed cache")
	}

	w := c.writeDefaults()
	for _, opt := range options {
		if opt != nil {
			opt(&w)
		}
	}

	// A write replaces, never merges: the old entry releases its bytes
	// before the new value is encoded.
	c.removeLocked(key, removeReplaced)

	data, err := c.serializer.Encode(value)
	if err != nil {
		return nil, err
	}

	compressed := false
	if w.compress {
		data, err = c.compressor.Compress(data)
		if err != nil {
			return nil, err
		}
		compressed = true
	}

	now := c.clock.Now()
	e := &entry{
		key:        key,
		value:      data,
		bytes:      int64(len(data)),
		compressed: compressed,
		accessedAt: now,
		updatedAt:  now,
		ttl:        w.ttl.Milliseconds(),
		limit:      w.limit,
		cost:       w.cost,
	}
	// An explicit absolute expiry wins over TTL when both are positive.
	switch {
	case w.expiresAt > 0:
		e.expiresAt = w.expiresAt
	case e.ttl > 0:
		e.expiresAt = now + e.ttl
	}

	c.items[key] = e
	c.bytes += e.bytes

	c.stats.Set()
	if c.metrics != nil {
		c.metrics.recordSet()
	}
	c.updateUsageLocked()

	c.enforceBudgetLocked(now)

	return data, nil
}

// Get returns the decoded value for key. The expiration check runs first
// and may remove the entry; an absent or expired key is a miss, reported as
// (nil, false, nil). A hit bumps the entry's hit count and access time and
// schedules the deferred expiry sweep.
func (c *Cache) Get(key string) (any, bool, error) {
	c.mu.Lock()

	now := c.clock.Now()
	c.checkExpiredLocked(key, now)

	e, ok := c.items[key]
	if !ok {
		c.stats.Miss()
		if c.metrics != nil {
			c.metrics.recordMiss()
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	value, err := c.decode(e)
	if err != nil {
		c.mu.Unlock()
		return nil, false, err
	}

	e.hits++
	e.accessedAt = now
	c.stats.Hit()
	if c.metrics != nil {
		c.metrics.recordHit()
	}
	closed := c.closed
	c.mu.Unlock()

	if !closed {
		c.sweeper.Schedule(c.sweep)
	}

	return value, true, nil
}

// Info returns a copy of the entry's metadata together with its decoded
// value. Unlike Get it mutates no counters and does not run the expiration
// checker, so a stale entry the sweep has not reached yet is still reported.
func (c *Cache) Info(key string) (*EntryInfo, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}

	value, err := c.decode(e)
	if err != nil {
		return nil, false, err
	}

	return e.info(value), true, nil
}

// Delete removes the entry for key and returns the decoded value that was
// stored. An absent key returns (nil, false, nil).
func (c *Cache) Delete(key string) (any, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}

	value, err := c.decode(e)
	if err != nil {
		return nil, false, err
	}

	c.removeLocked(key, removeDeleted)
	return value, true, nil
}

// Clear removes all entries and zeroes the byte total. The hit and miss
// counters are process-lifetime and keep running; only construction resets
// them.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry)
	c.bytes = 0
	c.updateUsageLocked()
}

// Stats returns the entry count, process-lifetime hit and miss counters,
// and the running byte total.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Count:  int64(len(c.items)),
		Hits:   c.stats.Hits(),
		Misses: c.stats.Misses(),
		Bytes:  c.bytes,
	}
}

// Statistics returns the extended always-on statistics tracker.
func (c *Cache) Statistics() *Statistics {
	return c.stats
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns all keys currently present. Some may be expired but not yet
// swept.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

// Close stops the deferred sweep scheduler and rejects further writes.
// Reads of existing entries keep working; Close is idempotent.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.sweeper.Stop()
	return nil
}

// decode decompresses and deserializes an entry's stored bytes.
func (c *Cache) decode(e *entry) (any, error) {
	data := e.value
	if e.compressed {
		var err error
		data, err = c.compressor.Decompress(data)
		if err != nil {
			return nil, err
		}
	}
	return c.serializer.Decode(data)
}

// checkExpiredLocked removes the entry for key if it is expired. A missing
// key is a no-op.
func (c *Cache) checkExpiredLocked(key string, now int64) {
	e, ok := c.items[key]
	if !ok {
		return
	}
	if e.isExpired(now) {
		c.removeLocked(key, removeExpired)
	}
}

// purgeExpiredLocked runs the expiration check over every key.
func (c *Cache) purgeExpiredLocked(now int64) {
	for key, e := range c.items {
		if e.isExpired(now) {
			c.removeLocked(key, removeExpired)
		}
	}
}

// removeLocked deletes an entry from the map and releases its bytes,
// attributing the removal to reason. A missing key is a no-op, so the sweep
// deleting an already-deleted key is harmless.
func (c *Cache) removeLocked(key, reason string) {
	e, ok := c.items[key]
	if !ok {
		return
	}

	delete(c.items, key)
	c.bytes -= e.bytes

	switch reason {
	case removeExpired, removeEvicted:
		c.stats.Eviction()
		if c.metrics != nil {
			c.metrics.recordEviction()
		}
		c.logger.Debug("cache entry removed",
			"key", key, "bytes", e.bytes, "reason", reason)
		if c.evictFn != nil {
			c.evictFn(key, e.bytes)
		}
	default:
		c.stats.Delete()
		if c.metrics != nil {
			c.metrics.recordDelete()
		}
	}
	c.updateUsageLocked()
}

// sweep is the deferred background pass: it re-checks every key for
// expiration. Scheduled (debounced) after each successful Get, so stale
// entries are reclaimed even when no further writes happen.
func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.purgeExpiredLocked(c.clock.Now())
}

func (c *Cache) updateUsageLocked() {
	c.stats.UpdateUsage(int64(len(c.items)), c.bytes)
	if c.metrics != nil {
		c.metrics.updateUsage(len(c.items), c.bytes)
	}
}
