package app

import (
	"testing"
	"time"
)

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)

	got := defaultExportName(now)
	want := "accountability_export_2026-08-30.json"
	if got != want {
		t.Errorf("defaultExportName = %q, want %q", got, want)
	}
}
