package service

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerResetsPendingTimer(t *testing.T) {
	var fired atomic.Int32
	r := NewReplyScheduler(20*time.Millisecond, func(string) { fired.Add(1) })
	defer r.Stop()

	// Two rapid sends must collapse into a single reply.
	r.Schedule("c1")
	r.Schedule("c1")

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestSchedulerCancel(t *testing.T) {
	var fired atomic.Int32
	r := NewReplyScheduler(10*time.Millisecond, func(string) { fired.Add(1) })
	defer r.Stop()

	r.Schedule("c1")
	r.Cancel("c1")

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("fired %d times after cancel, want 0", got)
	}
}

func TestSchedulerStop(t *testing.T) {
	var fired atomic.Int32
	r := NewReplyScheduler(10*time.Millisecond, func(string) { fired.Add(1) })

	r.Schedule("c1")
	r.Schedule("c2")
	r.Stop()

	// Scheduling after Stop is a no-op.
	r.Schedule("c3")

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("fired %d times after stop, want 0", got)
	}
}
