// Package sched provides a debounced deferred-callback scheduler.
//
// The cache uses it to run a background expiry sweep shortly after every
// read without keeping a dedicated timer goroutine alive. The contract is
// deliberately narrow: at most one callback is pending at a time, and
// scheduling a new callback cancels any unfired one. Cancellation simply
// deschedules the pending timer; a callback that has already started
// running is never interrupted.
package sched

import (
	"sync"
	"time"
)

// Scheduler schedules a single pending deferred callback.
type Scheduler interface {
	// Schedule arranges for fn to run once, shortly after the call returns,
	// descheduling any previously scheduled callback that has not yet fired.
	Schedule(fn func())

	// Stop deschedules any pending callback and rejects future scheduling.
	Stop()
}

// Debounce is the default Scheduler implementation, built on time.AfterFunc.
// Callbacks run on their own goroutine after the configured delay (which may
// be zero), never synchronously within Schedule.
type Debounce struct {
	mu      sync.Mutex
	delay   time.Duration
	pending *time.Timer
	stopped bool
}

// NewDebounce creates a Debounce scheduler with the given delay. A zero
// delay still defers the callback to a separate goroutine at the runtime's
// next opportunity.
func NewDebounce(delay time.Duration) *Debounce {
	return &Debounce{delay: delay}
}

// Schedule replaces any pending callback with fn.
func (d *Debounce) Schedule(fn func()) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.delay, fn)
}

// Stop deschedules any pending callback. After Stop, Schedule is a no-op.
func (d *Debounce) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
