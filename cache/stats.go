package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats is the basic counter snapshot returned by Cache.Stats. Hits and
// misses are process-lifetime counters: Clear wipes entries and bytes but
// leaves them running, and only construction starts them at zero.
type Stats struct {
	Count  int64 `json:"count"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Bytes  int64 `json:"bytes"`
}

// Statistics tracks cache performance metrics. Stats are always collected;
// Prometheus export on top of them is optional.
type Statistics struct {
	// Atomic counters for thread-safe updates
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64

	// Protected by mutex
	mu        sync.RWMutex
	startTime time.Time
	entries   int64
	bytes     int64
	maxBytes  int64 // high-water mark of the byte total
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Hit records a cache hit.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Miss records a cache miss.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// Set records a cache set operation.
func (s *Statistics) Set() {
	atomic.AddInt64(&s.sets, 1)
}

// Delete records an explicit delete (including overwrite replacement).
func (s *Statistics) Delete() {
	atomic.AddInt64(&s.deletes, 1)
}

// Eviction records an entry removed by expiry or the eviction engine.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// UpdateUsage updates the current entry count and byte total.
func (s *Statistics) UpdateUsage(entries, bytes int64) {
	s.mu.Lock()
	s.entries = entries
	s.bytes = bytes
	if bytes > s.maxBytes {
		s.maxBytes = bytes
	}
	s.mu.Unlock()
}

// Hits returns the total number of cache hits.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the total number of cache misses.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Sets returns the total number of set operations.
func (s *Statistics) Sets() int64 {
	return atomic.LoadInt64(&s.sets)
}

// Deletes returns the total number of delete operations.
func (s *Statistics) Deletes() int64 {
	return atomic.LoadInt64(&s.deletes)
}

// Evictions returns the total number of expiry and eviction removals.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Entries returns the current number of entries in the cache.
func (s *Statistics) Entries() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Bytes returns the current stored byte total.
func (s *Statistics) Bytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bytes
}

// MaxBytes returns the highest byte total the cache has held.
func (s *Statistics) MaxBytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxBytes
}

// HitRatio returns the cache hit ratio (0.0 to 1.0).
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	misses := s.Misses()
	total := hits + misses

	if total == 0 {
		return 0.0
	}

	return float64(hits) / float64(total)
}

// Uptime returns how long the cache has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Entries   int64         `json:"entries"`
	Bytes     int64         `json:"bytes"`
	MaxBytes  int64         `json:"max_bytes"`
	HitRatio  float64       `json:"hit_ratio"`
	Uptime    time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Hits:      s.Hits(),
		Misses:    s.Misses(),
		Sets:      s.Sets(),
		Deletes:   s.Deletes(),
		Evictions: s.Evictions(),
		Entries:   s.Entries(),
		Bytes:     s.Bytes(),
		MaxBytes:  s.MaxBytes(),
		HitRatio:  s.HitRatio(),
		Uptime:    s.Uptime(),
	}
}
