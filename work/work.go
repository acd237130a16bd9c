// Package work implements the work unit: a schedulable computation with a
// packed atomic status, the Go counterpart of the original runtime's
// work/work.hpp, work/status.hpp and work/finished.hpp.
package work

import (
	"code.parlang.run/engine/cont"
	"code.parlang.run/engine/fn"
	"code.parlang.run/engine/internal/affinity"
	"code.parlang.run/engine/internal/bitfield"
	"code.parlang.run/engine/internal/lock"
)

// State is the work unit's primary lifecycle section of its status word.
type State uint32

const (
	Available State = iota
	Queued
	Active
	Finished
)

// statusLayout packs State (2 bits) plus two independent side bits:
// Required (someone actually demands this work's result, not just that it
// exists) and Acquired (a worker currently owns the right to run it, a
// separate concept from State==Active so a worker can re-check ownership
// after a stack inversion without racing a second worker). This follows
// spec's authoritative four-state-plus-two-side-bits layout rather than the
// original's inconsistent five/four field status.hpp.
var statusLayout = bitfield.NewLayout(2, 1, 1)

const (
	sectionState    = 0
	sectionRequired = 1
	sectionAcquired = 2
)

// SizeClass estimates a work unit's per-invocation footprint in bytes (the
// closure frame plus any locals it carries across suspensions). The
// scheduler uses this to decide whether the unit is cheap enough to keep on
// the owner's private stack or worth offering to the shared steal deque.
type SizeClass struct {
	Bytes int
}

var (
	// Small work units are single conditionals or arithmetic ops, too cheap
	// to be worth a cross-worker steal.
	Small = SizeClass{Bytes: 8}
	// Large work units are recursive/branching bodies (fib, list folds) big
	// enough that offering them for stealing pays for its own synchronization
	// cost.
	Large = SizeClass{Bytes: 4096}
)

// sizeThreshold is the byte cutoff between small and large work, derived
// from affinity.DefaultCacheInfo's LineSize per spec §4.8 ("a threshold
// derived from cache line size"): a work unit whose estimated footprint
// would not fit in one cache line is classified large.
var sizeThreshold = affinity.DefaultCacheInfo().LineSize

// Work is one schedulable computation. It implements lazy.Dependency so
// that a lazy value produced by this work can wait on it directly.
type Work struct {
	status        *bitfield.Word
	body          func(ctx fn.Context) (fn.Outcome, error)
	sizeClass     SizeClass
	continuations *lock.Locked[[]*cont.Continuation]
	err           error
}

// New returns a fresh, available Work running body when scheduled.
func New(body func(ctx fn.Context) (fn.Outcome, error), sizeClass SizeClass) *Work {
	return &Work{
		status:        bitfield.NewWord(statusLayout),
		body:          body,
		sizeClass:     sizeClass,
		continuations: lock.NewLocked[[]*cont.Continuation](nil),
	}
}

// SizeClassIsLarge reports whether this work should be offered to the
// shared steal deque rather than kept on the owner's private stack, per
// sizeThreshold.
func (w *Work) SizeClassIsLarge() bool {
	return w.sizeClass.Bytes > sizeThreshold
}

// State returns the work's current primary state.
func (w *Work) State() State {
	return State(w.status.Load(sectionState))
}

// MarkRequired flags that some in-flight computation actually needs this
// work's result (as opposed to it merely existing in a data structure that
// was never forced).
func (w *Work) MarkRequired() {
	w.status.Store(sectionRequired, 1)
}

// Required reports whether MarkRequired has been called.
func (w *Work) Required() bool {
	return w.status.Load(sectionRequired) == 1
}

// TryClaim transitions Available/Queued -> Active and sets Acquired in one
// step, so only one worker ever wins the right to run this work at a time.
// It succeeds from Available (a worker picked it up directly, e.g. off its
// own private stack) or Queued (stolen off the shared deque).
func (w *Work) TryClaim() bool {
	if w.status.CompareAndSwap2(sectionState, uint32(Available), uint32(Active), sectionAcquired, 0, 1) {
		return true
	}
	return w.status.CompareAndSwap2(sectionState, uint32(Queued), uint32(Active), sectionAcquired, 0, 1)
}

// MarkQueued transitions Available -> Queued, used when a work unit is
// placed on a worker's private stack or shared deque instead of run
// immediately.
func (w *Work) MarkQueued() bool {
	return w.status.CompareAndSwap(sectionState, uint32(Available), uint32(Queued))
}

// Release reverts Active -> Available and clears Acquired, used when Body
// returns Suspended: the work is not finished, but no worker owns it until
// its awaited dependencies wake it again.
func (w *Work) Release() {
	w.status.CompareAndSwap2(sectionState, uint32(Active), uint32(Available), sectionAcquired, 1, 0)
}

// Run invokes body exactly once. On fn.Complete it marks the work Finished
// and wakes every registered continuation. On fn.Suspended it calls Release
// so the work can be reclaimed later. The caller (the scheduler) is
// responsible for re-enqueuing this work once its awaited dependencies fire.
func (w *Work) Run(ctx fn.Context) fn.Outcome {
	outcome, err := w.body(ctx)
	if err != nil {
		w.err = err
	}
	switch outcome {
	case fn.Complete:
		w.finish()
	case fn.Suspended:
		w.Release()
	}
	return outcome
}

// Err returns the most recent non-nil error Body returned, or nil if it has
// never returned one.
func (w *Work) Err() error { return w.err }

func (w *Work) finish() {
	w.status.Store(sectionState, uint32(Finished))
	var pending []*cont.Continuation
	w.continuations.With(0, func(cs *[]*cont.Continuation) {
		pending = *cs
		*cs = nil
	})
	for _, c := range pending {
		c.Satisfy()
	}
}

// Done reports whether this work has finished running. Implements
// lazy.Dependency.
func (w *Work) Done() bool {
	return w.State() == Finished
}

// AddContinuation registers c to be satisfied once this work finishes,
// firing immediately if it already has. Implements lazy.Dependency.
func (w *Work) AddContinuation(c *cont.Continuation) {
	if w.Done() {
		c.Satisfy()
		return
	}
	var fire bool
	w.continuations.With(0, func(cs *[]*cont.Continuation) {
		if w.Done() {
			fire = true
			return
		}
		*cs = append(*cs, c)
	})
	if fire {
		c.Satisfy()
	}
}

// finishSentinel is the typed termination marker the scheduler pushes once
// per worker at shutdown, taking the place of the original's dynamic_cast
// based FinishedWork detection (spec's Design Notes prefer the typed-
// sentinel approach).
var finishSentinel = New(func(fn.Context) (fn.Outcome, error) { return fn.Complete, nil }, Small)

// FinishSentinel returns the process-wide termination marker.
func FinishSentinel() *Work { return finishSentinel }

// IsFinishSentinel reports whether w is the termination marker.
func IsFinishSentinel(w *Work) bool { return w == finishSentinel }
