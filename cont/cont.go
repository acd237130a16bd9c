// Package cont implements the continuation record attached to a lazy
// value's placeholder: a countdown of outstanding dependencies that, once
// it reaches zero, wakes whatever was waiting on them.
//
// Grounded on the original runtime's fn/continuation.hpp (Continuation{
// atomic<unsigned>& remaining; atomic<unsigned>& counter; }), adapted to a
// one-shot onReady callback (see Satisfy) instead of a shared counter.
package cont

import "code.hybscloud.com/atomix"

// Continuation tracks how many dependencies a waiter is still blocked on.
// One Continuation is shared by every dependency registered for a single
// logical wait; each dependency's fulfillment calls Satisfy exactly once.
type Continuation struct {
	remaining atomix.Int32
	valid     atomix.Bool
	onReady   func()
}

// New returns a Continuation counting down from n dependencies. onReady is
// invoked exactly once, the moment the n-th dependency is satisfied; it
// must not block.
func New(n int32, onReady func()) *Continuation {
	c := &Continuation{onReady: onReady}
	c.remaining.StoreRelease(n)
	c.valid.StoreRelease(true)
	return c
}

// Satisfy records that one dependency has completed. When the last
// outstanding dependency is satisfied, onReady fires.
func (c *Continuation) Satisfy() {
	if !c.valid.LoadAcquire() {
		return
	}
	if c.remaining.AddAcqRel(-1) == 0 {
		if c.valid.CompareAndSwapAcqRel(true, false) {
			c.onReady()
		}
	}
}

// Remaining returns the current outstanding-dependency count, mainly for
// tests and diagnostics.
func (c *Continuation) Remaining() int32 {
	return c.remaining.LoadAcquire()
}

// Done reports whether every dependency has already been satisfied.
func (c *Continuation) Done() bool {
	return c.remaining.LoadAcquire() <= 0
}
