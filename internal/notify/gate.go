package notify

import (
	"sync"
	"time"
)

// Cooldown is the minimum spacing between two delivered notifications.
// Anything inside the window is dropped, never deferred or batched.
const Cooldown = 2000 * time.Millisecond

// Status describes the gate's current delivery state.
type Status int

const (
	// StatusPaused: the user has paused notifications.
	StatusPaused Status = iota
	// StatusActive: delivery is working.
	StatusActive
	// StatusBlocked: the platform notifier rejected a delivery attempt.
	StatusBlocked
	// StatusUndecided: no delivery has been attempted yet.
	StatusUndecided
)

// String returns the indicator label for a status.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "notifications paused"
	case StatusActive:
		return "notifications active"
	case StatusBlocked:
		return "notifications blocked"
	default:
		return "notifications not decided"
	}
}

// Notifier delivers a single desktop notification.
type Notifier interface {
	Send(title, body string) error
}

// Gate rate-limits and optionally pauses desktop notifications. It is a
// simple rate limiter, not a queue: a suppressed notification is gone.
type Gate struct {
	mu       sync.Mutex
	notifier Notifier
	paused   bool
	lastFire time.Time
	probed   bool
	blocked  bool

	// now is injectable for tests.
	now func() time.Time
}

// NewGate creates a gate around the given notifier. paused restores the
// persisted preference.
func NewGate(notifier Notifier, paused bool) *Gate {
	return &Gate{
		notifier: notifier,
		paused:   paused,
		now:      time.Now,
	}
}

// TryShow attempts to deliver a notification. It reports whether the
// notification was actually handed to the platform: false when paused,
// inside the cooldown window, or when the notifier rejects delivery.
func (g *Gate) TryShow(title, body string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		return false
	}

	now := g.now()
	if !g.lastFire.IsZero() && now.Sub(g.lastFire) < Cooldown {
		return false
	}
	g.lastFire = now

	g.probed = true
	if err := g.notifier.Send(title, body); err != nil {
		g.blocked = true
		return false
	}
	g.blocked = false
	return true
}

// Toggle flips the paused flag and returns the new value. Persisting
// the flag is the caller's job.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = !g.paused
	return g.paused
}

// Paused reports whether notifications are currently paused.
func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Status returns the four-way indicator state: paused wins over
// everything, then blocked, then undecided until the first attempt.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.paused:
		return StatusPaused
	case g.blocked:
		return StatusBlocked
	case !g.probed:
		return StatusUndecided
	default:
		return StatusActive
	}
}
