package scenarios

import (
	"testing"

	"code.parlang.run/engine/internal/affinity"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/sched"
	"code.parlang.run/engine/work"
)

func runWorkers(t *testing.T, numWorkers int, root *work.Work) {
	t.Helper()
	pool := sched.NewPool(numWorkers, affinity.NewFake(numWorkers), false)
	pool.Submit(root)
	pool.Run()
}

func forEachWorkerCount(t *testing.T, fn func(t *testing.T, numWorkers int)) {
	for _, n := range []int{1, 2, 3, 4} {
		t.Run(workerCountName(n), func(t *testing.T) { fn(t, n) })
	}
}

func workerCountName(n int) string {
	switch n {
	case 1:
		return "1worker"
	case 2:
		return "2workers"
	case 3:
		return "3workers"
	default:
		return "4workers"
	}
}

func TestScenarioA_Identity(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := Identity(lazy.Int(42))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 42 {
			t.Fatalf("Identity(42) = (%d,%v), want (42,true)", got, ok)
		}
	})
}

func TestScenarioB_Sum4(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := Sum4(lazy.Int(1), lazy.Int(2), lazy.Int(3), lazy.Int(4))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 10 {
			t.Fatalf("Sum4(1,2,3,4) = (%d,%v), want (10,true)", got, ok)
		}
	})
}

func TestScenarioC_CondArith(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := CondArith(lazy.Int(5), lazy.Int(10), lazy.Int(22))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 9 {
			t.Fatalf("CondArith(5,10,22) = (%d,%v), want (9,true)", got, ok)
		}
	})
}

func TestScenarioD_CondArith(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := CondArith(lazy.Int(-5), lazy.Int(10), lazy.Int(22))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 21 {
			t.Fatalf("CondArith(-5,10,22) = (%d,%v), want (21,true)", got, ok)
		}
	})
}

func TestScenarioE_Fib(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := Fib(lazy.Int(10))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 89 {
			t.Fatalf("Fib(10) = (%d,%v), want (89,true)", got, ok)
		}
	})
}

func TestScenarioF_EvenOdd(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		root, out := IsEven(lazy.Int(10))
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != true {
			t.Fatalf("IsEven(10) = (%v,%v), want (true,true)", got, ok)
		}

		root2, out2 := IsOdd(lazy.Int(7))
		runWorkers(t, n, root2)
		if got, ok := out2.Get(); !ok || got != true {
			t.Fatalf("IsOdd(7) = (%v,%v), want (true,true)", got, ok)
		}
	})
}

func TestScenarioG_SumList(t *testing.T) {
	forEachWorkerCount(t, func(t *testing.T, n int) {
		list := Cons(lazy.Int(1), Cons(lazy.Int(2), Cons(lazy.Int(3), Nil())))
		root, out := SumList(list)
		runWorkers(t, n, root)
		if got, ok := out.Get(); !ok || got != 6 {
			t.Fatalf("SumList([1,2,3]) = (%d,%v), want (6,true)", got, ok)
		}
	})
}
