package sync

import (
	"testing"
	"time"
)

func TestRefresherTicks(t *testing.T) {
	r := New(20 * time.Millisecond)
	cmd := r.Start()
	t.Cleanup(r.Stop)

	done := make(chan struct{})
	go func() {
		if _, ok := cmd().(RefreshRequestMsg); !ok {
			t.Error("expected RefreshRequestMsg")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("no refresh request within a second")
	}
}

func TestTriggerNowDeliversImmediately(t *testing.T) {
	// An hour-long interval: only the manual trigger can fire.
	r := New(time.Hour)
	cmd := r.Start()
	t.Cleanup(r.Stop)

	r.TriggerNow()

	done := make(chan struct{})
	go func() {
		if _, ok := cmd().(RefreshRequestMsg); !ok {
			t.Error("expected RefreshRequestMsg")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manual trigger did not deliver")
	}
}

func TestStopUnblocksWaiter(t *testing.T) {
	r := New(time.Hour)
	cmd := r.Start()

	done := make(chan struct{})
	go func() {
		if msg := cmd(); msg != nil {
			t.Errorf("expected nil after stop, got %v", msg)
		}
		close(done)
	}()

	r.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter did not unblock on stop")
	}
}
