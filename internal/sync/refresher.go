package sync

import (
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshRequestMsg is a tea.Msg instructing the UI to re-fetch the
// activity list. It carries no payload: the list view re-runs its own
// current query.
type RefreshRequestMsg struct{}

// Refresher is the polling fallback: a fixed-interval timer that keeps
// requesting list refreshes independently of the live event stream.
// Overlapping triggers are harmless; the list view serializes them with
// sequence numbers.
type Refresher struct {
	interval  time.Duration
	requestCh chan struct{}
	triggerCh chan struct{}
	stopCh    chan struct{}
	mu        gosync.Mutex
	running   bool
}

// New creates a refresher with the given poll interval.
func New(interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{
		interval:  interval,
		requestCh: make(chan struct{}, 1),
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the ticker goroutine and returns a command that waits
// for the first refresh request.
func (r *Refresher) Start() tea.Cmd {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return r.waitForRequest()
	}
	r.running = true
	r.mu.Unlock()

	go r.run()

	return r.waitForRequest()
}

// Stop halts the ticker goroutine.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	close(r.stopCh)
	r.running = false
}

// TriggerNow requests an immediate refresh without waiting for the
// next tick.
func (r *Refresher) TriggerNow() {
	select {
	case r.triggerCh <- struct{}{}:
	default:
	}
}

// WaitForNextRequest returns a command that waits for the next refresh
// request. Call it after processing each RefreshRequestMsg to keep
// listening.
func (r *Refresher) WaitForNextRequest() tea.Cmd {
	return r.waitForRequest()
}

func (r *Refresher) waitForRequest() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-r.requestCh:
			return RefreshRequestMsg{}
		case <-r.stopCh:
			return nil
		}
	}
}

// run emits a refresh request on every tick or manual trigger.
func (r *Refresher) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.emit()
		case <-r.triggerCh:
			r.emit()
		}
	}
}

// emit sends a request without blocking; a pending request already in
// the channel covers this one.
func (r *Refresher) emit() {
	select {
	case r.requestCh <- struct{}{}:
	default:
	}
}
