// Package ops implements the built-in operators: arithmetic, comparisons,
// bitwise, and unary operators over Int and Bool, the Go counterpart of the
// original runtime's fn/operators.hpp macros (Binary_Int_Int_Int_Op__BuiltIn
// and friends) and fn/predefined.hpp's Plus__BuiltIn/Minus__BuiltIn.
//
// Every operator spawns a work.Work the same shape as a user-defined
// function call: enqueue both operands, await them, then compute. This
// keeps builtins indistinguishable from user functions to the scheduler,
// exactly as in the original, and — because Enqueue/Await are idempotent —
// needs no extra re-entrancy bookkeeping of its own (see fn.Instance's doc
// comment).
package ops

import (
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/work"
)

func binaryIntInt(a, b *lazy.Value[int64], f func(x, y int64) int64) (*work.Work, *lazy.Value[int64]) {
	return work.Call2(a, b, func(x, y int64) (int64, error) {
		return f(x, y), nil
	}, work.Small)
}

func binaryIntBool(a, b *lazy.Value[int64], f func(x, y int64) bool) (*work.Work, *lazy.Value[bool]) {
	return work.Call2(a, b, func(x, y int64) (bool, error) {
		return f(x, y), nil
	}, work.Small)
}

// Plus is Int -> Int -> Int addition.
func Plus(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x + y })
}

// Minus is Int -> Int -> Int subtraction.
func Minus(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x - y })
}

// Times is Int -> Int -> Int multiplication.
func Times(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x * y })
}

// Divide is Int -> Int -> Int truncating division.
func Divide(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return work.Call2(a, b, func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, errDivideByZero
		}
		return x / y, nil
	}, work.Small)
}

// Modulo is Int -> Int -> Int remainder.
func Modulo(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return work.Call2(a, b, func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, errDivideByZero
		}
		return x % y, nil
	}, work.Small)
}

// Pow is Int -> Int -> Int exponentiation by squaring, non-negative
// exponents only.
func Pow(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(base, exp int64) int64 {
		if exp < 0 {
			return 0
		}
		var result int64 = 1
		for exp > 0 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
			exp >>= 1
		}
		return result
	})
}

// Shl is Int -> Int -> Int left shift.
func Shl(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x << uint64(y) })
}

// Shr is Int -> Int -> Int arithmetic right shift.
func Shr(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x >> uint64(y) })
}

// BitAnd, BitOr, BitXor are Int -> Int -> Int bitwise operators.
func BitAnd(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x & y })
}
func BitOr(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x | y })
}
func BitXor(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 { return x ^ y })
}

// Spaceship is Int -> Int -> Int three-way comparison, resolved (per this
// repository's open-question decision, matching the spec's own resolution)
// as Int -> Int -> Int rather than Int -> Int -> Bool: -1, 0, or 1.
func Spaceship(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return binaryIntInt(a, b, func(x, y int64) int64 {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
}

// Lt, Le, Eq, Ne, Gt, Ge are the six Int comparisons, each Int -> Int ->
// Bool.
func Lt(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x < y })
}
func Le(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x <= y })
}
func Eq(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x == y })
}
func Ne(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x != y })
}
func Gt(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x > y })
}
func Ge(a, b *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return binaryIntBool(a, b, func(x, y int64) bool { return x >= y })
}

// Inc and Dec are Int -> Int unary increment/decrement.
func Inc(a *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return work.Call1(a, func(x int64) (int64, error) { return x + 1, nil }, work.Small)
}
func Dec(a *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return work.Call1(a, func(x int64) (int64, error) { return x - 1, nil }, work.Small)
}

// Not is Bool -> Bool negation.
func Not(a *lazy.Value[bool]) (*work.Work, *lazy.Value[bool]) {
	return work.Call1(a, func(x bool) (bool, error) { return !x, nil }, work.Small)
}
