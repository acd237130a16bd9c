// Package value defines the runtime's concrete data algebra: integers,
// booleans, the unit value, tuples, and tagged variants, the Go counterpart
// of the original runtime's types/builtin.hpp, types/compound.hpp, and
// types/display.hpp.
package value

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Int is the language's only integer type, a 64-bit signed value.
type Int = int64

// Bool is the language's boolean type.
type Bool = bool

// Empty is the unit value, rendered as "()".
type Empty struct{}

func (Empty) String() string { return "()" }

// Tuple2/Tuple3/Tuple4 alias samber/lo's generic tuple types rather than
// hand-rolling a parallel struct family — lo is already part of this
// retrieval pack's dependency surface (an indirect dependency promoted here
// to direct use) and is exactly the "tuple of independently typed leaves"
// shape the runtime's compound.hpp TupleT needs.
type (
	Tuple2[A, B any]       = lo.Tuple2[A, B]
	Tuple3[A, B, C any]    = lo.Tuple3[A, B, C]
	Tuple4[A, B, C, D any] = lo.Tuple4[A, B, C, D]
)

// NewTuple2/3/4 build tuples, thin aliases over lo.T2/T3/T4 kept local so
// callers never import samber/lo directly.
func NewTuple2[A, B any](a A, b B) Tuple2[A, B]             { return lo.T2(a, b) }
func NewTuple3[A, B, C any](a A, b B, c C) Tuple3[A, B, C]  { return lo.T3(a, b, c) }
func NewTuple4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return lo.T4(a, b, c, d)
}

// Displayer is implemented by any runtime value with a custom textual
// rendering, the Go counterpart of types/display.hpp's ostream overloads.
type Displayer interface {
	Display() string
}

// Display renders v the way the top-level driver prints a result: a
// Displayer via its Display method (a Tuple2Box as "(a, b)"), Empty as "()",
// a fmt.Stringer via String, everything else via fmt's default verb. A bare
// Tuple2/Tuple3/Tuple4 is not recognised and prints as fmt's struct form
// ("{a b}").
func Display(v any) string {
	switch t := v.(type) {
	case Displayer:
		return t.Display()
	case Empty:
		return "()"
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func (t Tuple2Box) Display() string { return displayTuple(t.A, t.B) }

// Tuple2Box adapts a Tuple2 to the Displayer interface (Go cannot attach
// methods to the aliased generic lo.Tuple2 directly).
type Tuple2Box struct {
	A, B any
}

func displayTuple(elems ...any) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Display(e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Variant is a tagged union over a fixed, ordered set of payload kinds, the
// Go counterpart of types/compound.hpp's VariantT<Types...>. Tag identifies
// which alternative Payload holds; interpretation of Tag is up to the
// caller (e.g. a two-alternative Variant used as a cons-list cell: tag 0 =
// nil, tag 1 = cons holding a Tuple2[Int, *Variant]).
type Variant struct {
	Tag     int
	Payload any
}

// NewVariant constructs a Variant alternative.
func NewVariant(tag int, payload any) Variant {
	return Variant{Tag: tag, Payload: payload}
}

func (v Variant) Display() string {
	return fmt.Sprintf("#%d(%s)", v.Tag, Display(v.Payload))
}
