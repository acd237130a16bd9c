// Package lock provides mutual-exclusion primitives that record which
// worker holds them, the Go counterpart of the original runtime's Lock /
// ExchangeLock / MutexLock / Locked<T> hierarchy.
package lock

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// WorkerID identifies the holder of a Lock. noHolder uses the maximum value
// rather than 0, since 0 is a legitimate worker id and the original's
// default-constructed atomic<ThreadId> holder risks colliding with it.
type WorkerID uint32

const noHolder WorkerID = ^WorkerID(0)

// Lock is the common interface implemented by SpinLock and MutexLock.
type Lock interface {
	TryAcquire(who WorkerID) bool
	Acquire(who WorkerID)
	// Release gives up the lock, returning false without releasing anything
	// if who is not the current holder.
	Release(who WorkerID) bool
	Held() bool
}

// SpinLock is a CAS-based spin lock, the default for short critical
// sections on the hot scheduling path (shared deque access).
type SpinLock struct {
	holder atomix.Uint32
}

// NewSpinLock returns an unheld SpinLock.
func NewSpinLock() *SpinLock {
	l := &SpinLock{}
	l.holder.StoreRelease(uint32(noHolder))
	return l
}

func (l *SpinLock) TryAcquire(who WorkerID) bool {
	return l.holder.CompareAndSwapAcqRel(uint32(noHolder), uint32(who))
}

func (l *SpinLock) Acquire(who WorkerID) {
	sw := spin.Wait{}
	for !l.TryAcquire(who) {
		sw.Once()
	}
}

func (l *SpinLock) Release(who WorkerID) bool {
	return l.holder.CompareAndSwapAcqRel(uint32(who), uint32(noHolder))
}

func (l *SpinLock) Held() bool {
	return l.holder.LoadAcquire() != uint32(noHolder)
}

// MutexLock wraps sync.Mutex with holder bookkeeping: Acquire blocks on the
// mutex instead of spinning.
type MutexLock struct {
	mu     sync.Mutex
	holder atomix.Uint32
}

// NewMutexLock returns an unheld MutexLock.
func NewMutexLock() *MutexLock {
	l := &MutexLock{}
	l.holder.StoreRelease(uint32(noHolder))
	return l
}

func (l *MutexLock) TryAcquire(who WorkerID) bool {
	if !l.mu.TryLock() {
		return false
	}
	l.holder.StoreRelease(uint32(who))
	return true
}

func (l *MutexLock) Acquire(who WorkerID) {
	l.mu.Lock()
	l.holder.StoreRelease(uint32(who))
}

func (l *MutexLock) Release(who WorkerID) bool {
	if l.holder.LoadAcquire() != uint32(who) {
		return false
	}
	l.holder.StoreRelease(uint32(noHolder))
	l.mu.Unlock()
	return true
}

func (l *MutexLock) Held() bool {
	return l.holder.LoadAcquire() != uint32(noHolder)
}

// Locked guards a value of type T with a Lock, the Go counterpart of
// Locked<T, LockT>. With combines acquire/release around fn so callers never
// forget to release under a panic or early return.
type Locked[T any] struct {
	lock  Lock
	value T
}

// NewLocked wraps value with a SpinLock.
func NewLocked[T any](value T) *Locked[T] {
	return &Locked[T]{lock: NewSpinLock(), value: value}
}

// NewLockedWith wraps value with a caller-supplied Lock implementation.
func NewLockedWith[T any](l Lock, value T) *Locked[T] {
	return &Locked[T]{lock: l, value: value}
}

// With runs fn with exclusive access to the guarded value.
func (g *Locked[T]) With(who WorkerID, fn func(v *T)) {
	g.lock.Acquire(who)
	defer g.lock.Release(who)
	fn(&g.value)
}
