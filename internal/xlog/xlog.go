// Package xlog is a minimal structured-diagnostics wrapper used by driver
// and the scheduler's verbose mode.
//
// The teacher package (code.hybscloud.com/lfq) carries no logging
// dependency of its own, and the rest of the retrieval pack's logging
// libraries (izerolog, ilogrus, logiface) are built for service-style
// structured event logging at a scale this runtime's diagnostic lines —
// sched.Pool.Run's per-worker "running on cpu %d" placement line, the Go
// counterpart of the original's thread_manager.hpp thread_setup diagnostic —
// do not warrant. This runtime never raises a thread's scheduling priority
// (spec §6 treats SCHED_FIFO as best-effort and out of scope beyond a thin
// abstraction), so unlike the original's "Running on CPU %d with priority
// %d" the placement line reports only the CPU. A thin log.Logger wrapper
// keeps the call sites uniform (Logger.Printf) without pulling in a
// structured-logging dependency purely for a couple of lines; see
// DESIGN.md.
package xlog

import (
	"log"
	"os"
)

// Logger prints diagnostics to stderr when enabled, and discards them
// otherwise, avoiding a branch at every call site.
type Logger struct {
	enabled bool
	std     *log.Logger
}

// New returns a Logger that prints only when verbose is true.
func New(verbose bool) *Logger {
	return &Logger{
		enabled: verbose,
		std:     log.New(os.Stderr, "parlang: ", 0),
	}
}

// Printf logs one diagnostic line, formatted like fmt.Printf, when the
// Logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.std.Printf(format, args...)
}
