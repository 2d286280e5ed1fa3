package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/testing/leaktest"
)

const (
	testWorkerCount = 2
	testQueueSize   = 10
	testJobCount    = 2
	waitTimeout     = 2 * time.Second
)

type testJob struct {
	executed *int32
	wg       *sync.WaitGroup
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	j.wg.Done()
	return nil
}

func waitGroup(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for jobs")
	}
}

func TestPool(t *testing.T) {
	var executed int32
	var wg sync.WaitGroup
	pool := NewPool(testWorkerCount, testQueueSize)
	pool.Start(context.Background())

	wg.Add(testJobCount)
	job := &testJob{executed: &executed, wg: &wg}
	require.NoError(t, pool.Enqueue(job))
	require.NoError(t, pool.Enqueue(job))

	waitGroup(t, &wg)
	pool.Stop()

	assert.Equal(t, int32(testJobCount), atomic.LoadInt32(&executed))
}

func TestPool_QueueFull(t *testing.T) {
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1)

	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
	err := pool.Enqueue(JobFunc(func(context.Context) error { return nil }))

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 1, pool.Pending())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())

	started := make(chan struct{})
	var cancelled atomic.Bool
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})))

	<-started
	pool.Stop()

	assert.True(t, cancelled.Load())
}

func TestPool_SurvivesFailingJobs(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") })))
	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { panic("kaboom") })))
	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error {
		wg.Done()
		return nil
	})))

	waitGroup(t, &wg)
}

func TestPool_RunRecoversPanic(t *testing.T) {
	pool := NewPool(1, 1)
	err := pool.run(context.Background(), JobFunc(func(context.Context) error { panic("kaboom") }))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Contains(t, err.Error(), UnnamedJob)
}

func TestNamed(t *testing.T) {
	sentinel := errors.New("boom")
	job := Named("mine", JobFunc(func(context.Context) error { return sentinel }))

	assert.Equal(t, "mine", jobName(job))
	assert.ErrorIs(t, job.Process(context.Background()), sentinel)

	pool := NewPool(1, 1)
	err := pool.run(context.Background(), Named("fight", JobFunc(func(context.Context) error { panic("ouch") })))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job fight panicked")
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(testWorkerCount, testQueueSize)
		pool.Start(context.Background())
		require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
		pool.Stop()
	})
}
