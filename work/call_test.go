package work

import (
	"errors"
	"testing"

	"code.parlang.run/engine/fn"
	"code.parlang.run/engine/lazy"
)

// stubContext is a minimal fn.Context for exercising Call1..Call4 without a
// scheduler: every dependency passed to it is already a Const, so Await
// always returns true immediately and Enqueue is a no-op.
type stubContext struct{}

func (stubContext) Enqueue(lazy.Dependency)            {}
func (stubContext) Await(...lazy.Dependency) bool { return true }

func TestCall1(t *testing.T) {
	w, out := Call1(lazy.Const(int64(21)), func(a int64) (int64, error) {
		return a * 2, nil
	}, Small)
	w.TryClaim()
	if outcome := w.Run(stubContext{}); outcome != fn.Complete {
		t.Fatalf("Run() = %v, want Complete", outcome)
	}
	if got, ok := out.Get(); !ok || got != 42 {
		t.Fatalf("Get() = (%d,%v), want (42,true)", got, ok)
	}
}

func TestCall2(t *testing.T) {
	w, out := Call2(lazy.Const(int64(3)), lazy.Const(int64(4)), func(a, b int64) (int64, error) {
		return a + b, nil
	}, Small)
	w.TryClaim()
	w.Run(stubContext{})
	if got, ok := out.Get(); !ok || got != 7 {
		t.Fatalf("Get() = (%d,%v), want (7,true)", got, ok)
	}
}

func TestCall4ErrorPropagates(t *testing.T) {
	sentinel := errors.New("div by zero")
	w, out := Call4(lazy.Const(int64(1)), lazy.Const(int64(2)), lazy.Const(int64(3)), lazy.Const(int64(4)),
		func(a, b, c, d int64) (int64, error) {
			return 0, sentinel
		}, Small)
	w.TryClaim()
	w.Run(stubContext{})
	if w.Err() != sentinel {
		t.Fatalf("Err() = %v, want %v", w.Err(), sentinel)
	}
	if _, ok := out.Get(); ok {
		t.Fatalf("expected out to remain unassigned after an error")
	}
}

func TestCall1SuspendsWhenArgNotDone(t *testing.T) {
	arg := lazy.NewPlaceholder[int64](nil)
	w, out := Call1(arg, func(a int64) (int64, error) { return a, nil }, Small)
	w.TryClaim()
	// stubContext.Await always reports true, so use a context that reports
	// the real done-ness of the dependency to exercise the suspend path.
	if outcome := w.Run(realAwaitContext{}); outcome != fn.Suspended {
		t.Fatalf("Run() = %v, want Suspended while arg is undone", outcome)
	}
	if _, ok := out.Get(); ok {
		t.Fatalf("expected out to remain unassigned while suspended")
	}
}

// realAwaitContext reports Await truthfully by checking Done() on each dep,
// unlike stubContext which always reports ready.
type realAwaitContext struct{}

func (realAwaitContext) Enqueue(lazy.Dependency) {}
func (realAwaitContext) Await(deps ...lazy.Dependency) bool {
	for _, d := range deps {
		if !d.Done() {
			return false
		}
	}
	return true
}

func TestCall2Of2ProducesIndependentLeaves(t *testing.T) {
	w, quot, rem := Call2Of2(lazy.Const(int64(17)), lazy.Const(int64(5)), func(a, b int64) (int64, int64, error) {
		return a / b, a % b, nil
	}, Small)
	w.TryClaim()
	if outcome := w.Run(stubContext{}); outcome != fn.Complete {
		t.Fatalf("Run() = %v, want Complete", outcome)
	}
	if got, ok := quot.Get(); !ok || got != 3 {
		t.Fatalf("quot.Get() = (%d,%v), want (3,true)", got, ok)
	}
	if got, ok := rem.Get(); !ok || got != 2 {
		t.Fatalf("rem.Get() = (%d,%v), want (2,true)", got, ok)
	}
}

func TestCall2Of2SuspendsWhenArgNotDone(t *testing.T) {
	a := lazy.NewPlaceholder[int64](nil)
	w, quot, rem := Call2Of2(a, lazy.Const(int64(5)), func(a, b int64) (int64, int64, error) {
		return a / b, a % b, nil
	}, Small)
	w.TryClaim()
	if outcome := w.Run(realAwaitContext{}); outcome != fn.Suspended {
		t.Fatalf("Run() = %v, want Suspended while a is undone", outcome)
	}
	if _, ok := quot.Get(); ok {
		t.Fatalf("expected quot to remain unassigned while suspended")
	}
	if _, ok := rem.Get(); ok {
		t.Fatalf("expected rem to remain unassigned while suspended")
	}
}
