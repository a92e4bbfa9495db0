package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := NewPool(4)
	pool.Start(context.Background())

	var count atomic.Int64
	for i := 0; i < 50; i++ {
		pool.Submit(func(ctx context.Context) {
			count.Add(1)
		})
	}
	pool.Wait()

	if got := count.Load(); got != 50 {
		t.Errorf("expected 50 tasks run, got %d", got)
	}
}

func TestPool_WaitIsBarrier(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())

	var done atomic.Bool
	pool.Submit(func(ctx context.Context) {
		time.Sleep(20 * time.Millisecond)
		done.Store(true)
	})
	pool.Wait()

	if !done.Load() {
		t.Error("Wait returned before submitted task finished")
	}
}

func TestPool_CancelledContextDropsTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(2)
	pool.Start(ctx)

	var count atomic.Int64
	for i := 0; i < 10; i++ {
		pool.Submit(func(ctx context.Context) {
			count.Add(1)
		})
	}
	pool.Wait()

	if got := count.Load(); got != 0 {
		t.Errorf("expected cancelled tasks dropped, %d ran", got)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start(context.Background())

	var count atomic.Int64
	pool.Submit(func(ctx context.Context) {
		count.Add(1)
	})
	pool.Wait()

	if got := count.Load(); got != 1 {
		t.Errorf("expected clamped pool to still run tasks, got %d", got)
	}
}

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow() || !l.Allow() {
		t.Error("expected burst of 2 to be allowed")
	}
	if l.Allow() {
		t.Error("expected third immediate call to be denied")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected Wait to fail once ctx expires")
	}
}

func TestLimiter_ClampedDefaults(t *testing.T) {
	l := NewLimiter(0, 0)

	if !l.Allow() {
		t.Error("expected clamped limiter to allow one call")
	}
}
