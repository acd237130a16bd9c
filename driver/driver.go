// Package driver wires a root computation to a worker pool and runs it to
// completion, the Go counterpart of the original runtime's
// system/work_manager.hpp::run / src/main.cpp driving loop.
//
// Unlike the original's process-wide static WorkManager, every run here
// owns its own Pool instance — no package-level mutable scheduler state —
// per this repository's design decision to replace global state with an
// explicit engine-instance context.
package driver

import (
	"runtime"
	"time"

	"code.parlang.run/engine/internal/affinity"
	"code.parlang.run/engine/internal/xlog"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/sched"
	"code.parlang.run/engine/work"
)

// Config controls one run of the engine.
type Config struct {
	// NumCPUs is how many workers to start. Zero means runtime.NumCPU().
	NumCPUs int
	// Verbose enables the per-worker placement log line.
	Verbose bool
	// Pinner overrides the platform's default CPU pinner; nil uses
	// affinity.New().
	Pinner affinity.Pinner
}

// Result is what Run reports back: the computed value and how long the
// pool took to produce it.
type Result[T any] struct {
	Value    T
	Duration time.Duration
}

// Run schedules root (the Work that will assign out) on a fresh Pool sized
// per cfg, blocks until out is done, and reports the elapsed wall time.
func Run[T any](cfg Config, root *work.Work, out *lazy.Value[T]) Result[T] {
	n := cfg.NumCPUs
	if n <= 0 {
		n = runtime.NumCPU()
	}
	pinner := cfg.Pinner
	if pinner == nil {
		pinner = affinity.New()
	}
	log := xlog.New(cfg.Verbose)
	log.Printf("starting pool with %d workers", n)

	pool := sched.NewPool(n, pinner, cfg.Verbose)
	pool.Submit(root)

	start := time.Now()
	pool.Run()
	elapsed := time.Since(start)

	val, _ := out.Get()
	return Result[T]{Value: val, Duration: elapsed}
}
