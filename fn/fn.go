// Package fn implements the function generator/instance split used to
// describe a computation's body, the Go counterpart of the original
// runtime's fn/fn.hpp, fn/fn_gen.hpp and fn/fn_inst.hpp.
//
// A Generator is the compile-time-fixed description of a function (how many
// arguments it takes, how to build a fresh Instance for a call); an
// Instance is the per-call, potentially re-entered state that actually runs
// the body. Splitting the two lets a recursive call re-invoke the same
// Instance.Body after a stack inversion without losing whatever scratch
// state it accumulated on the first pass — see Instance's doc comment.
package fn

import "code.parlang.run/engine/lazy"

// Outcome is the result of one call to an Instance's Body, the explicit
// stand-in for the original's exception-based stack_inversion /
// FinishedWork control flow (see the repository's design notes for why
// exceptions were replaced with an explicit return value).
type Outcome int

const (
	// Suspended means Body could not make progress because one or more
	// Await calls would have blocked; the worker parks this instance's
	// owning work and will re-invoke Body once the awaited dependencies are
	// satisfied.
	Suspended Outcome = iota
	// Complete means Body finished and assigned its result.
	Complete
)

// Context is the narrow surface a function body needs from the scheduler:
// the ability to make sure a dependency is being worked on, and to block
// this logical call (by returning Suspended up the stack) until it is done.
// sched.Worker implements Context.
type Context interface {
	// Enqueue ensures dep's producing work (if any) is scheduled. It is
	// always safe to call more than once for the same dependency: enqueuing
	// an already-queued or already-finished work is a no-op.
	Enqueue(dep lazy.Dependency)
	// Await reports whether every dep in deps is done. If any is not, Await
	// registers continuations on all of them so the call is woken once they
	// all are, and returns false — the caller must then return Suspended
	// from Body without mutating state it hasn't already safely cached.
	Await(deps ...lazy.Dependency) bool
}

// Instance is one call's worth of re-entrant state. Body may be invoked more
// than once for the same logical call: once to make initial progress, and
// again each time it was previously Suspended and its Await'ed dependencies
// have since completed. Implementations that spawn child work (recursive
// calls) must cache the spawned dependency in an instance field and check
// it for nil before spawning again, exactly as the original's builtin
// operator bodies rely on Enqueue/Await being idempotent rather than
// tracking re-entrancy themselves.
type Instance interface {
	Body(ctx Context) (Outcome, error)
}

// InstanceFunc adapts a plain function to Instance, for bodies with no
// per-call scratch state of their own (most builtin operators).
type InstanceFunc func(ctx Context) (Outcome, error)

func (f InstanceFunc) Body(ctx Context) (Outcome, error) { return f(ctx) }

// Generator builds a fresh Instance for each call to a function value. User
// code and builtin operators each provide one.
type Generator interface {
	NewInstance() Instance
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() Instance

func (f GeneratorFunc) NewInstance() Instance { return f() }
