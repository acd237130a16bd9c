// Package affinity pins scheduler workers to CPUs and reports cache
// geometry, the Go counterpart of the original runtime's ThreadManager
// (pthread_setaffinity_np / sched_setscheduler) and cache_utils.
//
// The original links real pinning calls at build time and swaps in no-op
// shims (wrap/pthread_setaffinity_np.hpp) for oversubscribed test runs.
// Go has no link-time wrap mechanism, so Pinner is instead a small
// interface: Linux gets a real golang.org/x/sys/unix implementation, and
// tests use a Fake that just records calls.
package affinity

import (
	"fmt"
	"sync"
)

// Pinner binds the calling OS thread to a CPU. It does not change the
// thread's scheduling priority.
type Pinner interface {
	// Pin locks the calling goroutine's OS thread (via runtime.LockOSThread,
	// done by the caller) to cpu. Returns an error if pinning is not
	// supported or the syscall fails; callers should treat failure as
	// non-fatal and continue unpinned, matching the original's best-effort
	// set_affinity.
	Pin(cpu int) error
	// Available reports the number of CPUs usable by the process.
	Available() int
}

// CacheInfo mirrors cache_utils: a thin, read-only view of cache geometry
// used to size the scheduler's size-class threshold. Probing real hardware
// topology is out of scope (spec Non-goals); DefaultCacheInfo returns conservative,
// hard-coded values typical of a modern x86-64/arm64 server core.
type CacheInfo struct {
	LineSize int
	Size     int
}

// DefaultCacheInfo returns the fallback geometry used when no platform-
// specific probe is wired in.
func DefaultCacheInfo() CacheInfo {
	return CacheInfo{LineSize: 64, Size: 32 * 1024}
}

// Fake is a no-op Pinner used in tests, replacing the original's linker-wrap
// shims for oversubscribed or non-Linux test environments. Pool.Run calls Pin
// from one goroutine per worker, so recorded calls are guarded by mu.
type Fake struct {
	NumCPU int

	mu   sync.Mutex
	Pins []int
}

func NewFake(numCPU int) *Fake {
	return &Fake{NumCPU: numCPU}
}

func (f *Fake) Pin(cpu int) error {
	if cpu < 0 || cpu >= f.NumCPU {
		return fmt.Errorf("affinity: cpu %d out of range [0,%d)", cpu, f.NumCPU)
	}
	f.mu.Lock()
	f.Pins = append(f.Pins, cpu)
	f.mu.Unlock()
	return nil
}

// RecordedPins returns a snapshot of the CPUs Pin has been called with.
func (f *Fake) RecordedPins() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.Pins))
	copy(out, f.Pins)
	return out
}

func (f *Fake) Available() int { return f.NumCPU }
