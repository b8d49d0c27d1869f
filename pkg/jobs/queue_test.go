package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	done := make(chan string, 3)
	q := NewQueue("test", func(ctx context.Context, j Job) error {
		done <- j.ID
		return nil
	}, QueueConfig{Workers: 2})
	q.Start(context.Background())
	defer q.Stop()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(Job{ID: id}))
	}
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		select {
		case id := <-done:
			seen[id] = true
		case <-time.After(time.Second):
			t.Fatal("job not processed")
		}
	}
	assert.Len(t, seen, 3)
}

func TestQueueRetriesThenReportsFailure(t *testing.T) {
	var attempts atomic.Int32
	failed := make(chan Job, 1)
	q := NewQueue("test", func(ctx context.Context, j Job) error {
		attempts.Add(1)
		return errors.New("boom")
	}, QueueConfig{
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
		OnFailure:  func(j Job, err error) { failed <- j },
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "x"}))
	select {
	case j := <-failed:
		assert.Equal(t, "x", j.ID)
		assert.Equal(t, int32(3), attempts.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("failure handler not called")
	}
}

func TestQueueRejectsBeforeStartAndAfterStop(t *testing.T) {
	q := NewQueue("test", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.ErrorIs(t, q.Enqueue(Job{ID: "x"}), ErrNotStarted)

	q.Start(context.Background())
	q.Stop()
	assert.ErrorIs(t, q.Enqueue(Job{ID: "y"}), ErrStopped)
}

func TestQueueFullDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	q := NewQueue("test", func(ctx context.Context, j Job) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())
	defer q.Stop()
	defer close(release)

	require.NoError(t, q.Enqueue(Job{ID: "running"}))
	require.Eventually(t, func() bool { return q.Pending() == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, q.Enqueue(Job{ID: "buffered"}))
	assert.ErrorIs(t, q.Enqueue(Job{ID: "overflow"}), ErrQueueFull)
}

func TestQueueRecoversPanicsAndObservesRuns(t *testing.T) {
	var observed atomic.Int32
	failed := make(chan error, 1)
	q := NewQueue("test", func(context.Context, Job) error {
		panic("bad pdf")
	}, QueueConfig{
		OnFailure: func(j Job, err error) { failed <- err },
		Observer: func(j Job, took time.Duration, err error) {
			if err != nil {
				observed.Add(1)
			}
		},
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "p"}))
	select {
	case err := <-failed:
		assert.Contains(t, err.Error(), "panicked")
	case <-time.After(time.Second):
		t.Fatal("panic not reported")
	}
	assert.Equal(t, int32(1), observed.Load())
}

func TestQueueJobTimeout(t *testing.T) {
	failed := make(chan error, 1)
	q := NewQueue("test", func(ctx context.Context, j Job) error {
		<-ctx.Done()
		return ctx.Err()
	}, QueueConfig{
		JobTimeout: 10 * time.Millisecond,
		OnFailure:  func(j Job, err error) { failed <- err },
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "slow"}))
	select {
	case err := <-failed:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("timeout not enforced")
	}
}

func TestQueueBackoffDoublesAndCaps(t *testing.T) {
	q := NewQueue("test", nil, QueueConfig{RetryDelay: 100 * time.Millisecond})
	assert.Equal(t, 100*time.Millisecond, q.backoff(1))
	assert.Equal(t, 200*time.Millisecond, q.backoff(2))
	assert.Equal(t, 400*time.Millisecond, q.backoff(3))
	assert.Equal(t, maxBackoff, q.backoff(20))
}
