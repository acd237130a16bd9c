// Package sched implements the per-worker scheduler: a private, unsynchronized
// LIFO stack plus a lock-guarded shared FIFO deque that other workers may
// steal from, exactly the split the original runtime's WorkRunner keeps
// between private_work_stack and shared_work_queue (work/runner.hpp).
package sched

import (
	"code.hybscloud.com/iox"

	"code.parlang.run/engine/cont"
	"code.parlang.run/engine/internal/deque"
	"code.parlang.run/engine/internal/lock"
	"code.parlang.run/engine/lazy"
	"code.parlang.run/engine/work"
)

// sharedDequeCapacity bounds the per-worker steal deque. Work offered
// beyond this capacity simply stays on the private stack instead (spec
// allows this: offering to steal is a scheduling hint, not a correctness
// requirement).
const sharedDequeCapacity = 4096

// Worker runs work units to completion, implementing fn.Context so function
// bodies can Enqueue dependencies and Await them.
type Worker struct {
	id       lock.WorkerID
	pool     *Pool
	private  []*work.Work // single-owner LIFO, no synchronization
	shared   *deque.Cyclic[*work.Work]
	current  *work.Work
	verbose  bool
}

func newWorker(id lock.WorkerID, pool *Pool) *Worker {
	return &Worker{
		id:     id,
		pool:   pool,
		shared: deque.NewCyclic[*work.Work](sharedDequeCapacity),
	}
}

// Enqueue implements fn.Context. It schedules dep's producing work (if any)
// exactly once; re-enqueuing an already-queued, active, or finished work is
// a no-op by construction of work.Work.MarkQueued's CAS.
func (w *Worker) Enqueue(dep lazy.Dependency) {
	p, ok := dep.(lazy.Producible)
	if !ok {
		return
	}
	prod := p.GetWork()
	if prod == nil {
		return
	}
	target, ok := prod.(*work.Work)
	if !ok {
		return
	}
	w.schedule(target)
}

func (w *Worker) schedule(target *work.Work) {
	if !target.MarkQueued() {
		return
	}
	w.pool.outstanding.AddAcqRel(1)
	w.place(target)
}

func (w *Worker) place(target *work.Work) {
	if target.SizeClassIsLarge() {
		if err := w.shared.PushBack(w.id, target); err == nil {
			return
		}
		// Shared deque full: fall back to the private stack below.
	}
	w.private = append(w.private, target)
}

// Await implements fn.Context. It returns true immediately if every dep is
// already done. Otherwise it registers a continuation across all not-yet-
// done deps that re-schedules the currently running work once they all
// complete, and returns false so Body can return fn.Suspended.
func (w *Worker) Await(deps ...lazy.Dependency) bool {
	var pending []lazy.Dependency
	for _, d := range deps {
		if !d.Done() {
			pending = append(pending, d)
		}
	}
	if len(pending) == 0 {
		return true
	}
	resumed := w.current
	c := cont.New(int32(len(pending)), func() {
		w.pool.resume(resumed)
	})
	for _, d := range pending {
		d.AddContinuation(c)
	}
	return false
}

func (w *Worker) dispatch(u *work.Work) {
	if work.IsFinishSentinel(u) {
		panic("sched: finish sentinel must never be dispatched")
	}
	if !u.TryClaim() {
		return
	}
	w.current = u
	u.Run(w)
	w.current = nil
	if u.Done() {
		w.pool.outstanding.AddAcqRel(-1)
	}
}

// run is the worker's main loop: private stack, own shared deque, then
// stealing from siblings, then idle backoff; it exits once it pops the
// typed finish sentinel (spec Design Notes: typed sentinel over dynamic
// cast / exceptions).
func (w *Worker) run() {
	backoff := iox.Backoff{}
	for {
		if n := len(w.private); n > 0 {
			u := w.private[n-1]
			w.private = w.private[:n-1]
			if work.IsFinishSentinel(u) {
				return
			}
			w.dispatch(u)
			backoff.Reset()
			continue
		}
		if u, err := w.shared.PopBack(w.id); err == nil {
			if work.IsFinishSentinel(u) {
				return
			}
			w.dispatch(u)
			backoff.Reset()
			continue
		}
		if u := w.pool.steal(w.id); u != nil {
			if work.IsFinishSentinel(u) {
				return
			}
			w.dispatch(u)
			backoff.Reset()
			continue
		}
		if w.pool.shouldShutdown() {
			w.private = append(w.private, work.FinishSentinel())
			continue
		}
		backoff.Wait()
	}
}
