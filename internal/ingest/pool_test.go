package ingest

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func drainResults(t *testing.T, results <-chan result) int {
	t.Helper()

	done := make(chan int, 1)
	go func() {
		n := 0
		for range results {
			n++
		}
		done <- n
	}()

	select {
	case n := <-done:
		return n
	case <-time.After(3 * time.Second):
		t.Fatal("results channel never closed")
		return 0
	}
}

func TestPool_RateLimitedWorkerSurvivesClose(t *testing.T) {
	p := newPool(1, 10)
	p.setRateLimit(10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := p.run(ctx)

	var ran int32
	p.submit(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	// Let the worker pick up the task and park on the rate ticker before
	// intake stops.
	time.Sleep(20 * time.Millisecond)
	p.close()

	if n := drainResults(t, results); n != 1 {
		t.Fatalf("expected 1 result, got %d", n)
	}
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatalf("task did not run")
	}
}

func TestPool_RunsAllTasksUnderRateLimit(t *testing.T) {
	p := newPool(4, 32)
	p.setRateLimit(1000)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := p.run(ctx)

	var ran int32
	for i := 0; i < 20; i++ {
		p.submit(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	p.close()

	if n := drainResults(t, results); n != 20 {
		t.Fatalf("expected 20 results, got %d", n)
	}
	if atomic.LoadInt32(&ran) != 20 {
		t.Fatalf("expected 20 tasks run, got %d", ran)
	}
}

func TestPool_ContextCancelUnblocksWorkers(t *testing.T) {
	p := newPool(1, 10)
	p.setRateLimit(1)

	ctx, cancel := context.WithCancel(context.Background())
	results := p.run(ctx)

	p.submit(func(context.Context) error { return nil })
	time.Sleep(20 * time.Millisecond)
	cancel()

	_ = drainResults(t, results)
}
