package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type deleteAction struct{ id int64 }

func press(t *testing.T, m Model, k string) tea.Msg {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestConfirmDeliversActionOnYes(t *testing.T) {
	m := New(80, 24)
	m.Show("Delete?", deleteAction{id: 7})

	for _, k := range []string{"y", "enter"} {
		result, ok := press(t, m, k).(ResultMsg)
		if !ok {
			t.Fatalf("key %q produced no ResultMsg", k)
		}
		if !result.Confirmed {
			t.Errorf("key %q not confirmed", k)
		}
		action, ok := result.Action.(deleteAction)
		if !ok || action.id != 7 {
			t.Errorf("key %q action = %#v", k, result.Action)
		}
	}
}

func TestConfirmWithholdsActionOnNo(t *testing.T) {
	m := New(80, 24)
	m.Show("Delete?", deleteAction{id: 7})

	for _, k := range []string{"n", "esc"} {
		result, ok := press(t, m, k).(ResultMsg)
		if !ok {
			t.Fatalf("key %q produced no ResultMsg", k)
		}
		if result.Confirmed {
			t.Errorf("key %q confirmed a cancellation", k)
		}
		if result.Action != nil {
			t.Errorf("key %q leaked action %#v", k, result.Action)
		}
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m := New(80, 24)
	m.Show("Delete?", deleteAction{id: 7})

	if msg := press(t, m, "x"); msg != nil {
		t.Errorf("unrelated key produced %#v", msg)
	}
}
