// Package worker runs perft subtree counts on a pool of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Job is one subtree to count: the position reached after Move was played,
// searched to Depth further plies.
type Job struct {
	Game  *engine.Game // owned by the job; workers never share a game
	Move  engine.Move
	Depth int
	Index int // Original index for ordering results
}

// Result is the outcome of one Job.
type Result struct {
	Move  engine.Move
	Index int
	Nodes uint64
	Err   error
}

// CountFunc counts the nodes below a job's position.
type CountFunc func(ctx context.Context, job Job) Result

// Pool fans jobs out to a fixed number of workers.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	count      CountFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(count CountFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		count:      count,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Cancelling ctx has the same effect
// as Stop.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker counts jobs until the job channel is closed. Once the pool is
// stopped the remaining jobs are answered with the stop reason instead.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if err := ctx.Err(); err != nil {
			p.results <- Result{Move: job.Move, Index: job.Index, Err: err}
			continue
		}
		if p.IsStopped() {
			p.results <- Result{Move: job.Move, Index: job.Index, Err: context.Canceled}
			continue
		}
		p.results <- p.count(ctx, job)
	}
}

// Submit queues a job. It may block if the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip the jobs still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
