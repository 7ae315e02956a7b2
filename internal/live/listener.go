package live

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is one server-push message from the backend's /events stream.
type Event struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// EventMsg is a tea.Msg delivered to the UI for each inbound event.
type EventMsg struct {
	Event Event
}

// maxBackoff caps the reconnect delay.
const maxBackoff = 30 * time.Second

// Listener maintains one persistent connection to the server-sent event
// stream. The client is a passive receiver: each event is surfaced to
// the UI, which notifies and refreshes. The transport's silent default
// retry is replaced with explicit exponential backoff (1s, 2s, 4s, ...
// capped at 30s, reset after a successful event).
type Listener struct {
	url        string
	httpClient *http.Client
	eventCh    chan Event
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// New creates a listener for the event stream under baseURL.
func New(baseURL string) *Listener {
	return &Listener{
		url: strings.TrimRight(baseURL, "/") + "/events",
		// No client timeout; the stream stays open indefinitely.
		httpClient: &http.Client{},
		eventCh:    make(chan Event, 16),
	}
}

// Start launches the stream goroutine and returns a command that waits
// for the first event.
func (l *Listener) Start() tea.Cmd {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return l.waitForEvent()
	}
	l.running = true
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.mu.Unlock()

	go l.run(ctx)

	return l.waitForEvent()
}

// Stop tears down the stream connection.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}
	l.cancel()
	l.running = false
}

// WaitForNextEvent returns a command that waits for the next event.
// Call it after processing each EventMsg to keep listening.
func (l *Listener) WaitForNextEvent() tea.Cmd {
	return l.waitForEvent()
}

func (l *Listener) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-l.eventCh
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}

// run connects, consumes the stream, and reconnects with backoff until
// the context is cancelled.
func (l *Listener) run(ctx context.Context) {
	attempt := 0
	for {
		delivered, err := l.consume(ctx)
		if ctx.Err() != nil {
			return
		}
		_ = err

		if delivered > 0 {
			attempt = 0
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoffDuration(attempt)):
		}
		attempt++
	}
}

// consume opens one connection and dispatches events until the stream
// breaks. Returns the number of events delivered on this connection.
func (l *Listener) consume(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("connecting to %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	delivered := 0
	scanner := bufio.NewScanner(resp.Body)
	var data []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Blank line dispatches the accumulated event.
			if len(data) > 0 {
				if ev, ok := parseEvent(strings.Join(data, "\n")); ok {
					select {
					case l.eventCh <- ev:
						delivered++
					default:
						// Drop if the UI is not draining.
					}
				}
				data = data[:0]
			}
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(
				strings.TrimPrefix(line, "data:"), " ",
			))
		default:
			// event:, id:, retry: and comment lines are ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return delivered, fmt.Errorf("reading stream: %w", err)
	}
	return delivered, nil
}

// parseEvent decodes one event payload. Malformed payloads are skipped
// rather than breaking the stream.
func parseEvent(payload string) (Event, bool) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return Event{}, false
	}
	return ev, true
}

// backoffDuration computes the reconnect delay for the given attempt:
// 1s, 2s, 4s, ... capped at maxBackoff.
func backoffDuration(attempt int) time.Duration {
	if attempt > 5 {
		return maxBackoff
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
