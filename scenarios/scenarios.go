// Package scenarios implements the seven end-to-end test programs named in
// this repository's testable-properties section: identity, tuple-argument
// sum, conditional arithmetic, recursive Fibonacci, mutually recursive
// even/odd, and a cons-list sum over a tagged variant. Each is built from
// work, fn, lazy, ops and value exactly the way a compiled user program
// would be, and each is deterministic regardless of how many workers run
// it.
package scenarios

import (
	"code.parlang.run/engine/fn"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/ops"
	"code.parlang.run/engine/value"
	"code.parlang.run/engine/work"
)

// Identity is scenario A: id(x) = x, implemented as a reference forward
// rather than a copy, exercising lazy.Value's reference variant.
func Identity(x *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	var ref *lazy.Value[int64]
	var w *work.Work
	w = work.New(func(ctx fn.Context) (fn.Outcome, error) {
		ctx.Enqueue(x)
		if !ctx.Await(x) {
			return fn.Suspended, nil
		}
		ref.Resolve(x)
		return fn.Complete, nil
	}, work.Small)
	ref = lazy.NewReference[int64](w)
	// Resolve already makes ref.Done()/Get() forward to x once run; the
	// work itself still needs to reach Finished so anything awaiting the
	// *work* (as opposed to awaiting ref directly) observes completion.
	return w, ref
}

// Sum4 is scenario B: sum(a,b,c,d) = a+b+c+d over four Int arguments.
func Sum4(a, b, c, d *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	return work.Call4(a, b, c, d, func(a, b, c, d int64) (int64, error) {
		return a + b + c + d, nil
	}, work.Small)
}

// condArithInstance is scenarios C/D's re-entrant call state: λ (x,y,z).
// ((if x≥0 then y else z)+1)-2. Its shape mirrors fibInstance's caching
// discipline — each stage's spawned child work is cached in an instance
// field the first time Body runs past it, so a re-invocation after a stack
// inversion never spawns the same child twice.
type condArithInstance struct {
	x, y, z *lazy.Value[int64]
	geOut   *lazy.Value[bool]

	selected  *lazy.Value[int64]
	plusWork  *work.Work
	plusOut   *lazy.Value[int64]
	minusWork *work.Work
	minusOut  *lazy.Value[int64]

	out *lazy.Value[int64]
}

func (c *condArithInstance) Body(ctx fn.Context) (fn.Outcome, error) {
	ctx.Enqueue(c.geOut)
	if !ctx.Await(c.geOut) {
		return fn.Suspended, nil
	}
	if c.selected == nil {
		ge, _ := c.geOut.Get()
		if ge {
			c.selected = c.y
		} else {
			c.selected = c.z
		}
	}
	ctx.Enqueue(c.selected)
	if !ctx.Await(c.selected) {
		return fn.Suspended, nil
	}
	if c.plusWork == nil {
		c.plusWork, c.plusOut = ops.Plus(c.selected, lazy.Int(1))
	}
	ctx.Enqueue(c.plusOut)
	if !ctx.Await(c.plusOut) {
		return fn.Suspended, nil
	}
	if c.minusWork == nil {
		c.minusWork, c.minusOut = ops.Minus(c.plusOut, lazy.Int(2))
	}
	ctx.Enqueue(c.minusOut)
	if !ctx.Await(c.minusOut) {
		return fn.Suspended, nil
	}
	v, _ := c.minusOut.Get()
	c.out.Assign(v)
	return fn.Complete, nil
}

// CondArith is scenarios C/D: λ (x,y,z). ((if x≥0 then y else z)+1)-2, built
// from the ops comparison and arithmetic primitives rather than a native Go
// if so it exercises the same "await a comparison result, then choose a
// further work item" pattern a compiled conditional expression would use.
func CondArith(x, y, z *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	var w *work.Work
	_, geOut := ops.Ge(x, lazy.Int(0))
	inst := &condArithInstance{x: x, y: y, z: z, geOut: geOut}
	w = work.New(func(ctx fn.Context) (fn.Outcome, error) { return inst.Body(ctx) }, work.Small)
	out := lazy.NewPlaceholder[int64](w)
	inst.out = out
	return w, out
}

// fibInstance is scenario E's re-entrant call state. It caches the two
// recursive child calls the first time Body runs past them, so a re-
// invocation after a stack inversion never spawns a child work twice —
// exactly the discipline the original's recursive builtin bodies rely on
// Enqueue/Await idempotency for, made explicit here because this body
// itself (not just the operators it calls) spawns children.
type fibInstance struct {
	n          *lazy.Value[int64]
	leftWork   *work.Work
	leftOut    *lazy.Value[int64]
	rightWork  *work.Work
	rightOut   *lazy.Value[int64]
	sumWork    *work.Work
	sumOut     *lazy.Value[int64]
	out        *lazy.Value[int64]
}

func (f *fibInstance) Body(ctx fn.Context) (fn.Outcome, error) {
	ctx.Enqueue(f.n)
	if !ctx.Await(f.n) {
		return fn.Suspended, nil
	}
	n, _ := f.n.Get()
	if n < 0 {
		f.out.Assign(0)
		return fn.Complete, nil
	}
	if n <= 1 {
		f.out.Assign(1)
		return fn.Complete, nil
	}
	if f.leftWork == nil {
		f.leftWork, f.leftOut = Fib(lazy.Int(n - 1))
		f.rightWork, f.rightOut = Fib(lazy.Int(n - 2))
	}
	ctx.Enqueue(f.leftOut)
	ctx.Enqueue(f.rightOut)
	if !ctx.Await(f.leftOut, f.rightOut) {
		return fn.Suspended, nil
	}
	if f.sumWork == nil {
		f.sumWork, f.sumOut = ops.Plus(f.leftOut, f.rightOut)
	}
	ctx.Enqueue(f.sumOut)
	if !ctx.Await(f.sumOut) {
		return fn.Suspended, nil
	}
	v, _ := f.sumOut.Get()
	f.out.Assign(v)
	return fn.Complete, nil
}

// Fib is scenario E: the doubly-recursive Fibonacci definition with
// fib(n) = 0 for n < 0, fib(n) = 1 for n <= 1, else fib(n-1) + fib(n-2).
func Fib(n *lazy.Value[int64]) (*work.Work, *lazy.Value[int64]) {
	var w *work.Work
	inst := &fibInstance{n: n}
	w = work.New(func(ctx fn.Context) (fn.Outcome, error) { return inst.Body(ctx) }, work.Large)
	out := lazy.NewPlaceholder[int64](w)
	inst.out = out
	return w, out
}

// evenOddInstance implements both is_even and is_odd as one mutually
// recursive pair, the Go counterpart of breaking the original's shared-
// pointer closure cycle via indices (scenario F's Design Notes treatment):
// rather than two closures each holding a live reference to the other, one
// instance type parameterized by `wantEven` plays both roles, so there is no
// cycle to break in the first place.
type evenOddInstance struct {
	n        *lazy.Value[int64]
	wantEven bool
	childW   *work.Work
	childOut *lazy.Value[bool]
	out      *lazy.Value[bool]
}

func (e *evenOddInstance) Body(ctx fn.Context) (fn.Outcome, error) {
	ctx.Enqueue(e.n)
	if !ctx.Await(e.n) {
		return fn.Suspended, nil
	}
	n, _ := e.n.Get()
	if n == 0 {
		e.out.Assign(e.wantEven)
		return fn.Complete, nil
	}
	if e.childW == nil {
		e.childW, e.childOut = evenOdd(lazy.Int(n-1), !e.wantEven)
	}
	ctx.Enqueue(e.childOut)
	if !ctx.Await(e.childOut) {
		return fn.Suspended, nil
	}
	v, _ := e.childOut.Get()
	e.out.Assign(v)
	return fn.Complete, nil
}

func evenOdd(n *lazy.Value[int64], wantEven bool) (*work.Work, *lazy.Value[bool]) {
	var w *work.Work
	inst := &evenOddInstance{n: n, wantEven: wantEven}
	w = work.New(func(ctx fn.Context) (fn.Outcome, error) { return inst.Body(ctx) }, work.Small)
	out := lazy.NewPlaceholder[bool](w)
	inst.out = out
	return w, out
}

// IsEven is scenario F's is_even(n).
func IsEven(n *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return evenOdd(n, true)
}

// IsOdd is scenario F's is_odd(n).
func IsOdd(n *lazy.Value[int64]) (*work.Work, *lazy.Value[bool]) {
	return evenOdd(n, false)
}

// List is scenario G's cons-list representation: tag 0 = nil, tag 1 = cons
// holding a value.Tuple2[Int, *lazy.Value[List]] (head, tail).
type List = value.Variant

// Nil is the empty list.
func Nil() *lazy.Value[List] {
	return lazy.Const(List{Tag: 0, Payload: value.Empty{}})
}

// Cons prepends head onto tail.
func Cons(head *lazy.Value[int64], tail *lazy.Value[List]) *lazy.Value[List] {
	h, _ := head.Get()
	return lazy.Const(List{Tag: 1, Payload: value.NewTuple2[int64, *lazy.Value[List]](h, tail)})
}

type sumListInstance struct {
	list     *lazy.Value[List]
	childW   *work.Work
	childOut *lazy.Value[int64]
	out      *lazy.Value[int64]
}

func (s *sumListInstance) Body(ctx fn.Context) (fn.Outcome, error) {
	ctx.Enqueue(s.list)
	if !ctx.Await(s.list) {
		return fn.Suspended, nil
	}
	l, _ := s.list.Get()
	if l.Tag == 0 {
		s.out.Assign(0)
		return fn.Complete, nil
	}
	pair := l.Payload.(value.Tuple2[int64, *lazy.Value[List]])
	if s.childW == nil {
		s.childW, s.childOut = SumList(pair.B)
	}
	ctx.Enqueue(s.childOut)
	if !ctx.Await(s.childOut) {
		return fn.Suspended, nil
	}
	rest, _ := s.childOut.Get()
	s.out.Assign(pair.A + rest)
	return fn.Complete, nil
}

// SumList is scenario G: fold a cons-list of Ints with +, sum([]) = 0.
func SumList(list *lazy.Value[List]) (*work.Work, *lazy.Value[int64]) {
	var w *work.Work
	inst := &sumListInstance{list: list}
	w = work.New(func(ctx fn.Context) (fn.Outcome, error) { return inst.Body(ctx) }, work.Small)
	out := lazy.NewPlaceholder[int64](w)
	inst.out = out
	return w, out
}
