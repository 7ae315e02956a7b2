package subtasksview

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/ui"
)

// newTestModel returns a view loaded with the given subtasks and a
// client pointed at a server that counts every request it receives.
func newTestModel(t *testing.T, subtasks []model.Subtask) (Model, *int) {
	t.Helper()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Write([]byte("[]"))
		},
	))
	t.Cleanup(srv.Close)

	k := keys.DefaultKeyMap()
	m := New(api.NewClient(srv.URL), &k, 80, 24)
	m.activityID = 1
	m.activityTitle = "Write report"
	m, _ = m.Update(LoadedMsg{Subtasks: subtasks})
	return m, &requests
}

func press(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestDeleteKeyAsksForConfirmationFirst(t *testing.T) {
	m, requests := newTestModel(t, []model.Subtask{
		{ID: 7, Title: "draft outline"},
		{ID: 8, Title: "send to review"},
	})

	m, cmd := press(t, m, 'd')
	if cmd == nil {
		t.Fatal("expected a command carrying the confirmation request")
	}

	req, ok := cmd().(ui.ConfirmRequestMsg)
	if !ok {
		t.Fatalf("expected ui.ConfirmRequestMsg, got %T", cmd())
	}
	if !strings.Contains(req.Prompt, "draft outline") {
		t.Errorf("prompt %q should name the subtask", req.Prompt)
	}
	action, ok := req.Action.(deleteConfirmedMsg)
	if !ok {
		t.Fatalf("expected deleteConfirmedMsg action, got %T", req.Action)
	}
	if action.subtaskID != 7 {
		t.Errorf("action targets subtask %d, want 7", action.subtaskID)
	}
	if *requests != 0 {
		t.Errorf("pressing d issued %d requests, want 0", *requests)
	}
}

func TestConfirmedDeleteIssuesRequest(t *testing.T) {
	m, _ := newTestModel(t, []model.Subtask{{ID: 7, Title: "draft outline"}})

	_, cmd := m.Update(deleteConfirmedMsg{subtaskID: 7})
	if cmd == nil {
		t.Fatal("expected a delete command after confirmation")
	}
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m, requests := newTestModel(t, nil)

	_, cmd := press(t, m, 'd')
	if cmd != nil {
		t.Error("expected no command with no subtasks")
	}
	if *requests != 0 {
		t.Errorf("got %d requests, want 0", *requests)
	}
}
