//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Linux pins via sched_setaffinity, the syscall underneath the original's
// pthread_setaffinity_np.
type Linux struct{}

func NewLinux() *Linux { return &Linux{} }

func (Linux) Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: SchedSetaffinity(cpu=%d): %w", cpu, err)
	}
	return nil
}

func (Linux) Available() int {
	return runtime.NumCPU()
}

// New returns the platform's real Pinner.
func New() Pinner { return Linux{} }
