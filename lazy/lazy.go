// Package lazy implements the single-assignment lazy value: the runtime's
// basic unit of deferred computation, with three internal variants
// (constant, placeholder, reference) exactly as in the original runtime's
// data_structures/lazy.hpp.
package lazy

import (
	"sync/atomic"

	"code.parlang.run/engine/cont"
	"code.parlang.run/engine/internal/lock"
)

// Dependency is the narrow surface a scheduler needs from anything a
// computation can wait on: is it already finished, and if not, register a
// continuation that fires once it is. Work implements this interface
// (structurally, without lazy importing work) to avoid an import cycle
// between lazy and work.
type Dependency interface {
	Done() bool
	AddContinuation(c *cont.Continuation)
}

type kind uint8

const (
	kindConstant kind = iota
	kindPlaceholder
	kindReference
)

// Producer is the work responsible for eventually assigning a Placeholder
// Value. It is itself a Dependency so the scheduler can decide whether that
// work needs to be (re)scheduled before awaiting the value it produces.
type Producer = Dependency

// Value is a single-assignment lazy value of type T. The zero Value is not
// usable; construct one with Const, NewPlaceholder, or NewReference.
type Value[T any] struct {
	kind kind

	// kindConstant
	constVal T

	// kindPlaceholder
	assigned      atomic.Bool
	value         T
	producer      Producer
	continuations *lock.Locked[[]*cont.Continuation]

	// kindReference — one-time CAS publish of the referent, using
	// sync/atomic.Pointer[T] as the sole deliberate standard-library
	// exception in this codebase: the observed atomix API surface (Uint64/
	// Uint32/Int64/Int32/Bool) has no generic atomic pointer type, and this
	// slot is published exactly once via CAS, so a hand-rolled lock would
	// add complexity the stdlib primitive already solves correctly.
	ref atomic.Pointer[Value[T]]
}

// Const returns an already-done lazy value wrapping v.
func Const[T any](v T) *Value[T] {
	return &Value[T]{kind: kindConstant, constVal: v}
}

// NewPlaceholder returns a not-yet-done lazy value that producer will
// eventually fulfill via Assign.
func NewPlaceholder[T any](producer Producer) *Value[T] {
	return &Value[T]{
		kind:          kindPlaceholder,
		producer:      producer,
		continuations: lock.NewLocked[[]*cont.Continuation](nil),
	}
}

// NewReference returns a lazy value that forwards to referent once
// published by Resolve. producer is the work that will call Resolve, so the
// scheduler can still find something to Enqueue before the reference is
// published. Used when a computation's result is itself another lazy value
// rather than a concrete T (e.g. returning an argument unchanged).
func NewReference[T any](producer Producer) *Value[T] {
	return &Value[T]{
		kind:          kindReference,
		producer:      producer,
		continuations: lock.NewLocked[[]*cont.Continuation](nil),
	}
}

// Resolve publishes referent as what a kindReference Value forwards to. It
// may only be called once; subsequent calls are no-ops, matching the
// single-assignment invariant.
func (v *Value[T]) Resolve(referent *Value[T]) {
	v.ref.CompareAndSwap(nil, referent)
}

func (v *Value[T]) followRef() *Value[T] {
	cur := v
	for cur.kind == kindReference {
		next := cur.ref.Load()
		if next == nil {
			return cur
		}
		cur = next
	}
	return cur
}

// Done reports whether the value has been assigned (constants are always
// done; references forward to their referent once published).
func (v *Value[T]) Done() bool {
	switch v.kind {
	case kindConstant:
		return true
	case kindReference:
		r := v.followRef()
		if r == v {
			return false
		}
		return r.Done()
	default:
		return v.assigned.Load()
	}
}

// Get returns the underlying value and whether it was available. Callers
// on the hot path should check Done first; Get never blocks.
func (v *Value[T]) Get() (T, bool) {
	switch v.kind {
	case kindConstant:
		return v.constVal, true
	case kindReference:
		r := v.followRef()
		if r == v {
			var zero T
			return zero, false
		}
		return r.Get()
	default:
		if v.assigned.Load() {
			return v.value, true
		}
		var zero T
		return zero, false
	}
}

// GetWork returns the Producer that will fulfill this value, or nil for a
// constant.
func (v *Value[T]) GetWork() Producer {
	if v.kind == kindPlaceholder || v.kind == kindReference {
		return v.producer
	}
	return nil
}

// Assign fulfills a placeholder exactly once. Calling Assign on an
// already-assigned placeholder, or on a non-placeholder, panics: the
// single-assignment invariant is a scheduler bug if violated, not a
// recoverable runtime condition.
func (v *Value[T]) Assign(val T) {
	if v.kind != kindPlaceholder {
		panic("lazy: Assign on non-placeholder value")
	}
	var pending []*cont.Continuation
	var dup bool
	v.continuations.With(0, func(cs *[]*cont.Continuation) {
		if v.assigned.Load() {
			dup = true
			return
		}
		v.value = val
		v.assigned.Store(true)
		pending = *cs
		*cs = nil
	})
	if dup {
		panic("lazy: double assignment to placeholder")
	}
	for _, c := range pending {
		c.Satisfy()
	}
}

// AddContinuation registers c to be satisfied once the value is done. If it
// is already done, c is satisfied immediately (a coalesced, poll-style
// wakeup rather than blocking the caller).
func (v *Value[T]) AddContinuation(c *cont.Continuation) {
	if v.kind == kindReference {
		r := v.followRef()
		if r != v {
			r.AddContinuation(c)
			return
		}
	}
	if v.Done() {
		c.Satisfy()
		return
	}
	var fire bool
	v.continuations.With(0, func(cs *[]*cont.Continuation) {
		if v.Done() {
			fire = true
			return
		}
		*cs = append(*cs, c)
	})
	if fire {
		c.Satisfy()
	}
}
