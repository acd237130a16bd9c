package sched

import (
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"

	"code.parlang.run/engine/internal/affinity"
	"code.parlang.run/engine/internal/lock"
	"code.parlang.run/engine/internal/xlog"
	"code.parlang.run/engine/work"
)

// externalHolder is the lock holder identity used when a goroutine outside
// any Worker's own run loop (a continuation firing on whichever goroutine
// happened to satisfy the last dependency) pushes onto a worker's shared
// deque. The deque's lock only needs Acquire/Release to use a matching id
// within one call, so any fixed value works here.
const externalHolder = lock.WorkerID(0)

// Pool owns a fixed set of Workers and the cross-worker bookkeeping
// (outstanding work count, round-robin resume target, steal victim
// selection) that a lone Worker cannot do by itself.
type Pool struct {
	workers     []*Worker
	outstanding atomix.Int64
	next        atomix.Uint32 // round-robin counter for resume target choice
	pinner      affinity.Pinner
	verbose     bool
	log         *xlog.Logger
}

// NewPool returns a Pool with numWorkers Workers, none yet running.
func NewPool(numWorkers int, pinner affinity.Pinner, verbose bool) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &Pool{pinner: pinner, verbose: verbose, log: xlog.New(verbose)}
	p.workers = make([]*Worker, numWorkers)
	for i := range p.workers {
		p.workers[i] = newWorker(lock.WorkerID(i), p)
		p.workers[i].verbose = verbose
	}
	return p
}

// Submit hands root to worker 0 before Run is called: onto its private
// stack, or onto its shared deque if root's size class is large (see
// Worker.place). It must not be used concurrently with a running pool.
func (p *Pool) Submit(root *work.Work) {
	root.MarkQueued()
	p.outstanding.AddAcqRel(1)
	p.workers[0].place(root)
}

// Run starts every worker, pins it (best-effort) to its own CPU, waits for
// all outstanding work to finish, then shuts every worker down via the
// typed finish sentinel.
func (p *Pool) Run() {
	var wg sync.WaitGroup
	wg.Add(len(p.workers))
	for i, w := range p.workers {
		go func(i int, w *Worker) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			if p.pinner != nil {
				cpu := i % max(1, p.pinner.Available())
				if err := p.pinner.Pin(cpu); err != nil {
					p.log.Printf("worker %d failed to pin to cpu %d: %v", i, cpu, err)
				} else {
					p.log.Printf("worker %d running on cpu %d", i, cpu)
				}
			}
			w.run()
		}(i, w)
	}
	wg.Wait()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// shouldShutdown reports whether there is no outstanding work left anywhere
// in the pool. Once true, a worker pushes the finish sentinel to itself and
// returns from its run loop.
func (p *Pool) shouldShutdown() bool {
	if p.outstanding.LoadAcquire() > 0 {
		return false
	}
	return true
}

// resume re-schedules target (previously Suspended, now Available again)
// onto some worker's shared deque. Called from whatever goroutine satisfies
// the last dependency target's Await was blocked on — not necessarily
// target's own worker — so it only ever touches a Worker's thread-safe
// shared deque, never a private stack directly.
func (p *Pool) resume(target *work.Work) {
	if target == nil || !target.MarkQueued() {
		return
	}
	victim := p.workers[int(p.next.AddAcqRel(1))%len(p.workers)]
	if err := victim.shared.PushBack(externalHolder, target); err != nil {
		// Shared deque momentarily full: retry against a different worker
		// once: losing a steal opportunity is a performance hit, not a
		// correctness problem, since the work remains reachable as long as
		// some worker eventually retries resume — here we simply fall back
		// to worker 0, whose deque is drained frequently.
		_ = p.workers[0].shared.PushBack(externalHolder, target)
	}
}

// steal attempts to take one work unit from another worker's shared deque,
// skipping the caller's own.
func (p *Pool) steal(self lock.WorkerID) *work.Work {
	n := len(p.workers)
	start := int(self)
	for i := 1; i < n; i++ {
		victim := p.workers[(start+i)%n]
		if victim.id == self {
			continue
		}
		if u, err := victim.shared.PopFront(self); err == nil {
			return u
		}
	}
	return nil
}

// NumWorkers returns how many workers this pool runs.
func (p *Pool) NumWorkers() int { return len(p.workers) }
