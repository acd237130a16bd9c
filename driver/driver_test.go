package driver

import (
	"testing"

	"code.parlang.run/engine/fn"
	"code.parlang.run/engine/internal/affinity"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/work"
)

func TestRunReturnsValueAndElapsed(t *testing.T) {
	var out *lazy.Value[int64]
	root := work.New(func(ctx fn.Context) (fn.Outcome, error) {
		out.Assign(99)
		return fn.Complete, nil
	}, work.Small)
	out = lazy.NewPlaceholder[int64](root)

	cfg := Config{NumCPUs: 2, Pinner: affinity.NewFake(2)}
	result := Run(cfg, root, out)

	if result.Value != 99 {
		t.Fatalf("Value = %d, want 99", result.Value)
	}
	if result.Duration < 0 {
		t.Fatalf("Duration = %v, want non-negative", result.Duration)
	}
}

func TestRunDefaultsWorkersWhenZero(t *testing.T) {
	out := lazy.NewPlaceholder[bool](nil)
	root := work.New(func(ctx fn.Context) (fn.Outcome, error) {
		out.Assign(true)
		return fn.Complete, nil
	}, work.Small)

	cfg := Config{Pinner: affinity.NewFake(4)}
	result := Run(cfg, root, out)
	if !result.Value {
		t.Fatalf("Value = %v, want true", result.Value)
	}
}
