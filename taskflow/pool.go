package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool is a fixed-size worker pool fed by a bounded FIFO queue: Push
// blocks the caller once the queue is full, rather than growing without
// bound. It is grounded on the original implementation's thread::Pool
// (a fixed-N-thread pool guarded by a mutex/condvar queue), rewritten
// around golang.org/x/sync/semaphore to bound live workers and
// golang.org/x/sync/errgroup to manage their lifecycle, the same way the
// teacher bounds concurrency in its own analyze.go.
type Pool struct {
	mu      sync.Mutex
	stopped bool

	queue  chan func()
	sem    *semaphore.Weighted
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool returns a running Pool that executes at most concurrency
// thunks at a time, queuing up to queueCapacity more before Push blocks.
func NewPool(concurrency, queueCapacity int) *Pool {
	if concurrency <= 0 {
		panic("taskflow: pool concurrency must be positive")
	}
	if queueCapacity <= 0 {
		queueCapacity = concurrency
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, _ := errgroup.WithContext(ctx)

	p := &Pool{
		queue:  make(chan func(), queueCapacity),
		sem:    semaphore.NewWeighted(int64(concurrency)),
		group:  group,
		ctx:    ctx,
		cancel: cancel,
	}
	p.group.Go(p.dispatch)
	return p
}

func (p *Pool) dispatch() error {
	for thunk := range p.queue {
		if err := p.sem.Acquire(p.ctx, 1); err != nil {
			return nil
		}
		t := thunk
		p.group.Go(func() error {
			defer p.sem.Release(1)
			t()
			return nil
		})
	}
	return nil
}

// Push enqueues thunk, blocking while the bounded queue is full. Pushing
// onto a stopped pool is a programming error and panics — the executor
// never pushes after calling Stop.
func (p *Pool) Push(thunk func()) {
	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()
	if stopped {
		panic("taskflow: push on a stopped pool")
	}
	p.queue <- thunk
}

// Stop shuts the pool down. With drain=true it waits for every already
// queued thunk to run to completion; with drain=false any thunks still
// sitting in the queue are discarded.
func (p *Pool) Stop(drain bool) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.queue)
	if !drain {
		p.cancel()
	}
	p.group.Wait()
	p.cancel()
}
