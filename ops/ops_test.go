package ops

import (
	"testing"

	"code.parlang.run/engine/fn"
	"code.parlang.run/engine/lazy"
)

// immediateContext is a minimal Context with no scheduler behind it, used to
// drive a single work.Work for builtins whose operands are already constants
// and therefore never actually suspend.
type immediateContext struct{}

func (immediateContext) Enqueue(lazy.Dependency)          {}
func (immediateContext) Await(deps ...lazy.Dependency) bool {
	for _, d := range deps {
		if !d.Done() {
			return false
		}
	}
	return true
}

func TestPlus(t *testing.T) {
	w, out := Plus(lazy.Int(2), lazy.Int(3))
	if !w.TryClaim() {
		t.Fatalf("TryClaim failed")
	}
	if outcome := w.Run(immediateContext{}); outcome != fn.Complete {
		t.Fatalf("outcome = %v, want Complete", outcome)
	}
	got, ok := out.Get()
	if !ok || got != 5 {
		t.Fatalf("Plus(2,3) = (%d,%v), want (5,true)", got, ok)
	}
}

func TestDivideByZero(t *testing.T) {
	w, _ := Divide(lazy.Int(1), lazy.Int(0))
	w.TryClaim()
	w.Run(immediateContext{})
	if w.Err() == nil {
		t.Fatalf("expected division by zero error")
	}
}

func TestComparisons(t *testing.T) {
	w, out := Lt(lazy.Int(1), lazy.Int(2))
	w.TryClaim()
	w.Run(immediateContext{})
	if got, _ := out.Get(); got != true {
		t.Fatalf("Lt(1,2) = %v, want true", got)
	}

	w2, out2 := Ge(lazy.Int(5), lazy.Int(5))
	w2.TryClaim()
	w2.Run(immediateContext{})
	if got, _ := out2.Get(); got != true {
		t.Fatalf("Ge(5,5) = %v, want true", got)
	}
}

func TestSpaceship(t *testing.T) {
	w, out := Spaceship(lazy.Int(1), lazy.Int(2))
	w.TryClaim()
	w.Run(immediateContext{})
	if got, _ := out.Get(); got != -1 {
		t.Fatalf("Spaceship(1,2) = %d, want -1", got)
	}
}

func TestIncDecNot(t *testing.T) {
	w, out := Inc(lazy.Int(41))
	w.TryClaim()
	w.Run(immediateContext{})
	if got, _ := out.Get(); got != 42 {
		t.Fatalf("Inc(41) = %d, want 42", got)
	}

	w2, out2 := Not(lazy.Bool(false))
	w2.TryClaim()
	w2.Run(immediateContext{})
	if got, _ := out2.Get(); got != true {
		t.Fatalf("Not(false) = %v, want true", got)
	}
}
