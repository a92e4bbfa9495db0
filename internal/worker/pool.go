// Package worker provides the bounded fan-out used for per-article
// classification requests.
package worker

import (
	"context"
	"sync"
)

// Task is a unit of work executed by the pool. Tasks must confine their
// writes to data they own; the pool provides no synchronization beyond
// the completion barrier.
type Task func(ctx context.Context)

// Pool runs tasks with a fixed number of workers. Wait acts as a
// synchronization barrier: it returns only after every submitted task
// has finished.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	started bool
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, workers*2),
	}
}

// Start launches the workers. Tasks submitted after ctx is cancelled
// are dropped.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				select {
				case <-ctx.Done():
					// Drain without executing once cancelled.
				default:
					task(ctx)
				}
			}
		}()
	}
}

// Submit queues a task for execution
func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// Wait closes the queue and blocks until all tasks have completed
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
}
