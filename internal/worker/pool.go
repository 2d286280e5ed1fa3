package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/PrintMiner_Go/internal/logger"
)

var (
	// ErrQueueFull is returned by Enqueue when every queue slot is taken
	ErrQueueFull = errors.New(ErrMsgQueueFull)
	// ErrPoolStopped is returned by Enqueue after Stop
	ErrPoolStopped = errors.New(ErrMsgPoolStopped)
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Named attaches a name to job for logs
func Named(name string, job Job) Job {
	return namedJob{name: name, Job: job}
}

type namedJob struct {
	name string
	Job
}

func jobName(job Job) string {
	if n, ok := job.(namedJob); ok {
		return n.name
	}
	return UnnamedJob
}

// Pool runs queued jobs on a fixed number of workers. Game actions that pace
// themselves with timers run here so a burst of players cannot start an
// unbounded number of long-lived goroutines.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		cancel:   func() {},
	}
}

// Start starts the workers. Jobs receive a context derived from ctx that is
// cancelled by Stop.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := p.run(ctx, job); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "worker", id, "job", jobName(job), "error", err)
			}
		case <-p.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// run processes one job, turning a panic into an error so the worker survives
func (p *Pool) run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgJobPanicFmt, jobName(job), r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue adds a job to the queue without blocking.
// It returns ErrQueueFull if the queue is full and ErrPoolStopped once the pool has stopped.
func (p *Pool) Enqueue(job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of queued jobs not yet picked up by a worker
func (p *Pool) Pending() int {
	return len(p.jobQueue)
}

// Stop cancels running jobs and waits for the workers to finish.
// Jobs still in the queue are dropped. Stop is safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.cancel()
	})
	p.wg.Wait()
}
