// Package parallel runs batches of independent tasks on a fixed set of
// goroutines with a barrier at the end of each batch.
//
// The jump-flood engine submits one batch per round. Run does not return
// until every task of the batch has finished, which is the round barrier.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run on a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// Task is a unit of work. Tasks of one batch run concurrently and must
// synchronize any shared state themselves.
type Task func()

// TaskError reports a task that panicked.
type TaskError struct {
	// Index is the task's position in the batch passed to Run.
	Index int

	// Value is the recovered panic value.
	Value any
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("parallel: task %d panicked: %v", e.Index, e.Value)
}

// Pool is a fixed set of worker goroutines.
//
// Each worker has its own buffered queue and steals from its peers when
// that queue is empty, so a batch with a few long tasks still spreads
// across all workers.
//
// Thread safety: Run may be called from several goroutines, but tasks must
// not call Run on the pool that is executing them.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	depth := max(workers*4, 8)
	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case fn := <-own:
			fn()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case fn := <-own:
			fn()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

// drain runs whatever is left in q without blocking.
func (p *Pool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one queued function from another worker, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case fn := <-p.queues[(id+i)%p.workers]:
			return fn
		default:
		}
	}
	return nil
}

// Run executes tasks on the pool and waits for all of them.
//
// A panicking task does not stop the others; every panic is returned as a
// *TaskError joined into the result. Tasks that could not be queued because
// the pool closed are reported as ErrClosed.
func (p *Pool) Run(tasks []Task) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		fn := func() {
			defer wg.Done()
			defer func() {
				if v := recover(); v != nil {
					errs[i] = &TaskError{Index: i, Value: v}
				}
			}()
			task()
		}

		select {
		case p.queues[i%p.workers] <- fn:
		case <-p.done:
			errs[i] = ErrClosed
			wg.Done()
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Close stops the workers after queued work has run.
// Close is safe to call multiple times but must not race with Run.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
