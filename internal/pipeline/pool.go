package pipeline

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/wavefold/shrinktune/internal/encoder"
)

// Task is one unit of work: a discovered file and its mirrored destination.
type Task struct {
	Source string
	Dest   string
}

// WorkFunc processes one task. It must never panic the run: failures are
// reported inside the Result.
type WorkFunc func(ctx context.Context, task Task) encoder.Result

// Pool is a bounded-concurrency dispatcher. Workers pull greedily from a
// shared channel, append to a guarded result list, and bump a completion
// counter observed by the progress reporter.
type Pool struct {
	workers   int
	completed atomic.Int64

	mu      sync.Mutex
	results []encoder.Result
}

// NewPool returns a Pool running at most workers tasks concurrently.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Completed exposes the shared completion counter. Observers read it with
// atomic loads only; a lagging reader is fine.
func (p *Pool) Completed() *atomic.Int64 {
	return &p.completed
}

// record appends one result and marks a file as accounted for, whether it
// succeeded or not.
func (p *Pool) record(res encoder.Result) {
	p.mu.Lock()
	p.results = append(p.results, res)
	p.mu.Unlock()
	p.completed.Add(1)
}

// Run dispatches every task across the worker pool and blocks until all of
// them have completed. Exactly one result is returned per task, in
// completion order. One file's failure never aborts the others.
func (p *Pool) Run(ctx context.Context, tasks []Task, fn WorkFunc) []encoder.Result {
	ch := make(chan Task)

	n := p.workers
	if n > len(tasks) {
		n = len(tasks)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				p.record(fn(ctx, task))
			}
		}()
	}

	for _, task := range tasks {
		ch <- task
	}
	close(ch)
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]encoder.Result, len(p.results))
	copy(out, p.results)
	return out
}
