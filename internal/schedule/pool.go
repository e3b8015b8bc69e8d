// Package schedule implements the bounded worker pool that runs
// background parse tasks off the UI thread and reports their results
// back through a single completion channel, in completion order rather
// than submission order.
package schedule

import (
	"context"
	"sync"
	"sync/atomic"
)

// TaskID identifies one submitted task. IDs are monotonically
// increasing and never reused.
type TaskID uint64

// Action is the work a task performs. It receives its own TaskID so it
// can, for example, check a per-task cancel flag it was handed
// alongside the submission, and a context that is cancelled if the
// pool itself is shut down.
type Action func(ctx context.Context, id TaskID) any

// Completion is delivered on a Pool's Completions channel once an
// Action returns, whether it ran to completion or observed
// cancellation; Result is whatever the Action returned.
type Completion struct {
	ID     TaskID
	Result any
}

// Pool is a fixed-size goroutine pool. Tasks are delivered to
// Completions in the order they finish, not the order they were
// submitted: a fast task submitted after a slow one completes first.
// There is no fairness guarantee beyond FIFO dispatch to idle workers;
// a pool under sustained load may starve a particular task if newer
// submissions keep workers busy.
type Pool struct {
	jobs        chan job
	Completions chan Completion

	nextID atomic.Uint64
	wg     sync.WaitGroup

	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
}

type job struct {
	id     TaskID
	action Action
}

// New starts a pool with the given number of workers. workers <= 0 is
// treated as 1.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:        make(chan job, workers*4),
		Completions: make(chan Completion, workers*4),
		ctx:         ctx,
		cancel:      cancel,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			result := j.action(p.ctx, j.id)
			p.Completions <- Completion{ID: j.id, Result: result}
		}
	}
}

// Submit enqueues action and returns the TaskID it was assigned. The
// action runs on some worker goroutine; its completion arrives on
// Completions, possibly before or after other tasks submitted around
// the same time.
func (p *Pool) Submit(action Action) TaskID {
	id := TaskID(p.nextID.Add(1))
	p.jobs <- job{id: id, action: action}
	return id
}

// Close stops accepting new work and cancels the context passed to
// in-flight actions, so cooperative actions can observe ctx.Done and
// return promptly. Close does not close Completions until all workers
// have exited, so a drain loop reading Completions until the channel
// closes sees every in-flight completion.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
		p.cancel()
		go func() {
			p.wg.Wait()
			close(p.Completions)
		}()
	})
}

// CancelFlag is a per-task cooperative cancellation flag an Action
// should poll periodically (e.g. once per chunk of work) and abandon
// its work early if set. It is distinct from the pool-wide context
// cancellation Close triggers: a CancelFlag cancels one task without
// affecting any other in-flight task.
type CancelFlag struct {
	flag atomic.Bool
}

// Cancel marks the flag as cancelled.
func (c *CancelFlag) Cancel() {
	c.flag.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (c *CancelFlag) Cancelled() bool {
	return c.flag.Load()
}
