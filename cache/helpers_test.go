package cache

import (
	"sync"

	"github.com/gkindel/nano-cache/errors"
)

// manualClock is a Clock driven explicitly by tests, so expiration and
// eviction arithmetic is deterministic without sleeping.
type manualClock struct {
	mu  sync.Mutex
	now int64
}

func newManualClock(start int64) *manualClock {
	return &manualClock{now: start}
}

func (c *manualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(ms int64) {
	c.mu.Lock()
	c.now += ms
	c.mu.Unlock()
}

// manualScheduler captures scheduled sweeps instead of running them, so
// tests control exactly when the deferred sweep fires.
type manualScheduler struct {
	mu        sync.Mutex
	pending   func()
	scheduled int
	stopped   bool
}

func (s *manualScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = fn
	s.scheduled++
}

func (s *manualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.pending = nil
}

// fire runs the pending sweep, if any, like the runtime eventually would.
func (s *manualScheduler) fire() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *manualScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return 1
	}
	return 0
}

// brokenSerializer fails on demand, to exercise codec error propagation.
type brokenSerializer struct {
	failEncode bool
	failDecode bool
}

func (b brokenSerializer) Encode(any) ([]byte, error) {
	if b.failEncode {
		return nil, errors.WrapInvalid(errors.ErrEncodeFailed, "brokenSerializer", "Encode", "forced failure")
	}
	return []byte(`"ok"`), nil
}

func (b brokenSerializer) Decode([]byte) (any, error) {
	if b.failDecode {
		return nil, errors.WrapInvalid(errors.ErrDecodeFailed, "brokenSerializer", "Decode", "forced failure")
	}
	return "ok", nil
}
