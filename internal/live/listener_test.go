package live

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseEvent(t *testing.T) {
	ev, ok := parseEvent(`{"type":"completed","title":"Pay rent"}`)
	if !ok {
		t.Fatal("expected valid event")
	}
	if ev.Type != "completed" || ev.Title != "Pay rent" {
		t.Errorf("event = %+v", ev)
	}
}

func TestParseEventMalformed(t *testing.T) {
	if _, ok := parseEvent("not json"); ok {
		t.Fatal("malformed payload must be skipped")
	}
}

func TestBackoffDuration(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{10, 30 * time.Second},
	}
	for _, c := range cases {
		if got := backoffDuration(c.attempt); got != c.want {
			t.Errorf("backoff(%d) = %v, want %v", c.attempt, got, c.want)
		}
	}
}

func TestListenerReceivesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Accept") != "text/event-stream" {
				t.Errorf("Accept = %q", r.Header.Get("Accept"))
			}
			flusher := w.(http.Flusher)
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"type\":\"created\",\"title\":\"A\"}\n\n")
			flusher.Flush()
			fmt.Fprint(w, ": keepalive comment\n")
			fmt.Fprint(w, "data: {\"type\":\"completed\",\"title\":\"B\"}\n\n")
			flusher.Flush()
			// Hold the connection open briefly so the reader drains.
			time.Sleep(100 * time.Millisecond)
		},
	))
	t.Cleanup(srv.Close)

	l := New(srv.URL)
	cmd := l.Start()
	t.Cleanup(l.Stop)

	msg, ok := cmd().(EventMsg)
	if !ok {
		t.Fatal("expected EventMsg")
	}
	if msg.Event.Type != "created" || msg.Event.Title != "A" {
		t.Errorf("first event = %+v", msg.Event)
	}

	msg, ok = l.WaitForNextEvent()().(EventMsg)
	if !ok {
		t.Fatal("expected second EventMsg")
	}
	if msg.Event.Type != "completed" || msg.Event.Title != "B" {
		t.Errorf("second event = %+v", msg.Event)
	}
}

func TestListenerSkipsMalformedPayloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			flusher := w.(http.Flusher)
			fmt.Fprint(w, "data: not json\n\n")
			fmt.Fprint(w, "data: {\"type\":\"snoozed\",\"title\":\"C\"}\n\n")
			flusher.Flush()
			time.Sleep(100 * time.Millisecond)
		},
	))
	t.Cleanup(srv.Close)

	l := New(srv.URL)
	cmd := l.Start()
	t.Cleanup(l.Stop)

	msg, ok := cmd().(EventMsg)
	if !ok {
		t.Fatal("expected EventMsg")
	}
	if msg.Event.Type != "snoozed" {
		t.Errorf("event = %+v, malformed payload should be skipped", msg.Event)
	}
}
