package activityform

import (
	"testing"
	"time"
)

func TestParseDeadlineConvertsLocalToUTC(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })
	time.Local = time.FixedZone("UTC+3", 3*60*60)

	got, err := ParseDeadline("2026-09-01 09:00")
	if err != nil {
		t.Fatalf("ParseDeadline: %v", err)
	}

	want := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("result not in UTC: %v", got.Location())
	}
}

func TestParseDeadlineRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2026-09-01", "09:00", "2026-13-01 09:00"} {
		if _, err := ParseDeadline(input); err == nil {
			t.Errorf("ParseDeadline(%q) accepted invalid input", input)
		}
	}
}

func TestParseDeadlineTrimsWhitespace(t *testing.T) {
	if _, err := ParseDeadline("  2026-09-01 09:00  "); err != nil {
		t.Errorf("ParseDeadline with padding: %v", err)
	}
}

func TestFormatDeadlineRoundTrip(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })
	time.Local = time.FixedZone("UTC-5", -5*60*60)

	stored := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	text := FormatDeadline(stored)
	if text != "2026-09-01 09:30" {
		t.Fatalf("FormatDeadline = %q", text)
	}

	back, err := ParseDeadline(text)
	if err != nil {
		t.Fatalf("ParseDeadline: %v", err)
	}
	if !back.Equal(stored) {
		t.Errorf("round trip: got %v, want %v", back, stored)
	}
}
