package templatesview

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

func newTestModel(t *testing.T, templates []model.Template) (Model, *int) {
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
	m, _ = m.Update(LoadedMsg{Templates: templates})
	return m, &requests
}

func TestDeleteKeyAsksForConfirmationFirst(t *testing.T) {
	m, requests := newTestModel(t, []model.Template{
		{ID: 5, Name: "Weekly report"},
	})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if cmd == nil {
		t.Fatal("expected a command carrying the confirmation request")
	}

	req, ok := cmd().(ui.ConfirmRequestMsg)
	if !ok {
		t.Fatalf("expected ui.ConfirmRequestMsg, got %T", cmd())
	}
	if !strings.Contains(req.Prompt, "Weekly report") {
		t.Errorf("prompt %q should name the template", req.Prompt)
	}
	action, ok := req.Action.(deleteConfirmedMsg)
	if !ok {
		t.Fatalf("expected deleteConfirmedMsg action, got %T", req.Action)
	}
	if action.templateID != 5 {
		t.Errorf("action targets template %d, want 5", action.templateID)
	}
	if *requests != 0 {
		t.Errorf("pressing d issued %d requests, want 0", *requests)
	}
}

func TestConfirmedDeleteIssuesRequest(t *testing.T) {
	m, _ := newTestModel(t, []model.Template{{ID: 5, Name: "Weekly report"}})

	_, cmd := m.Update(deleteConfirmedMsg{templateID: 5})
	if cmd == nil {
		t.Fatal("expected a delete command after confirmation")
	}
}
