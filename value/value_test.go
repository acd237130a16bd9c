package value

import "testing"

func TestDisplayEmpty(t *testing.T) {
	if got := Display(Empty{}); got != "()" {
		t.Fatalf("Display(Empty{}) = %q, want %q", got, "()")
	}
}

func TestDisplayTupleBox(t *testing.T) {
	box := Tuple2Box{A: Int(1), B: Int(2)}
	if got := box.Display(); got != "(1, 2)" {
		t.Fatalf("Display = %q, want %q", got, "(1, 2)")
	}
}

func TestNewTuple2(t *testing.T) {
	tup := NewTuple2(Int(3), true)
	if tup.A != 3 || tup.B != true {
		t.Fatalf("tuple = %+v, want {3 true}", tup)
	}
}

func TestVariantDisplay(t *testing.T) {
	nilCell := NewVariant(0, Empty{})
	if got := nilCell.Display(); got != "#0(())" {
		t.Fatalf("Display = %q, want %q", got, "#0(())")
	}
}
