package notify

import (
	"errors"
	"testing"
	"time"
)

// fakeNotifier records deliveries and can be told to fail.
type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(title, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, title)
	return nil
}

// newTestGate returns a gate with a controllable clock.
func newTestGate(t *testing.T, paused bool) (*Gate, *fakeNotifier, *time.Time) {
	t.Helper()
	n := &fakeNotifier{}
	g := NewGate(n, paused)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }
	return g, n, &now
}

func TestCooldownSuppressesSecondCall(t *testing.T) {
	g, n, now := newTestGate(t, false)

	if !g.TryShow("first", "") {
		t.Fatal("first notification should deliver")
	}
	*now = now.Add(500 * time.Millisecond)
	if g.TryShow("second", "") {
		t.Fatal("second notification inside cooldown should be dropped")
	}
	if len(n.sent) != 1 {
		t.Fatalf("delivered %d notifications, want 1", len(n.sent))
	}
}

func TestCooldownExpires(t *testing.T) {
	g, n, now := newTestGate(t, false)

	g.TryShow("first", "")
	*now = now.Add(Cooldown)
	if !g.TryShow("second", "") {
		t.Fatal("notification after cooldown should deliver")
	}
	if len(n.sent) != 2 {
		t.Fatalf("delivered %d, want 2", len(n.sent))
	}
}

func TestSuppressedNotificationsAreDroppedNotDeferred(t *testing.T) {
	g, n, now := newTestGate(t, false)

	g.TryShow("first", "")
	*now = now.Add(time.Second)
	g.TryShow("dropped", "")

	// Even long after the cooldown, the suppressed one never shows up.
	*now = now.Add(time.Hour)
	g.TryShow("third", "")

	if len(n.sent) != 2 || n.sent[1] != "third" {
		t.Fatalf("sent = %v, dropped notification must not reappear", n.sent)
	}
}

func TestPausedSuppressesRegardlessOfTiming(t *testing.T) {
	g, n, now := newTestGate(t, true)

	g.TryShow("a", "")
	*now = now.Add(time.Hour)
	g.TryShow("b", "")

	if len(n.sent) != 0 {
		t.Fatalf("paused gate delivered %v", n.sent)
	}
	if g.Status() != StatusPaused {
		t.Errorf("status = %v, want paused", g.Status())
	}
}

func TestToggleFlipsPaused(t *testing.T) {
	g, _, _ := newTestGate(t, false)

	if got := g.Toggle(); !got {
		t.Fatal("toggle should pause")
	}
	if !g.Paused() {
		t.Fatal("gate should report paused")
	}
	if got := g.Toggle(); got {
		t.Fatal("second toggle should resume")
	}
}

func TestStatusUndecidedUntilFirstAttempt(t *testing.T) {
	g, _, _ := newTestGate(t, false)

	if g.Status() != StatusUndecided {
		t.Fatalf("status = %v, want undecided before any attempt", g.Status())
	}
	g.TryShow("first", "")
	if g.Status() != StatusActive {
		t.Fatalf("status = %v, want active after delivery", g.Status())
	}
}

func TestStatusBlockedWhenNotifierFails(t *testing.T) {
	g, n, _ := newTestGate(t, false)
	n.err = errors.New("no notification service")

	if g.TryShow("a", "") {
		t.Fatal("failed delivery must report false")
	}
	if g.Status() != StatusBlocked {
		t.Fatalf("status = %v, want blocked", g.Status())
	}
}
