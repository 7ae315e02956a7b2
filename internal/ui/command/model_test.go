package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandMsgParsing(t *testing.T) {
	tests := []struct {
		input string
		name  string
		arg   string
	}{
		{"refresh", "refresh", ""},
		{"export", "export", ""},
		{"import /tmp/backup.json", "import", "/tmp/backup.json"},
		{"import  path with  spaces.json", "import", "path with spaces.json"},
		{"", "", ""},
	}

	for _, tt := range tests {
		c := CommandMsg(tt.input)
		if got := c.Name(); got != tt.name {
			t.Errorf("CommandMsg(%q).Name() = %q, want %q", tt.input, got, tt.name)
		}
		if got := c.Arg(); got != tt.arg {
			t.Errorf("CommandMsg(%q).Arg() = %q, want %q", tt.input, got, tt.arg)
		}
	}
}

func TestEscapeCancelsPalette(t *testing.T) {
	m := New(80, 24)
	m.input.SetValue("exp")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a cancel command on esc")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", cmd())
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared on cancel: %q", m.input.Value())
	}
}

func TestEmptyEnterCancelsPalette(t *testing.T) {
	m := New(80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a cancel command on empty enter")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", cmd())
	}
}
