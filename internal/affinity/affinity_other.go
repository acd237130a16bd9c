//go:build !linux

package affinity

import "runtime"

// New returns a Fake on platforms without a wired affinity syscall, matching
// the original's best-effort approach — pinning is a performance hint, not a
// correctness requirement.
func New() Pinner { return NewFake(runtime.NumCPU()) }
