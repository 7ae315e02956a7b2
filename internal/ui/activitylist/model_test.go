package activitylist

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
)

func newTestModel(t *testing.T, pageSize int) Model {
	t.Helper()

	k := keys.DefaultKeyMap()
	return New(nil, &k, pageSize, 80, 24)
}

func activity(id int64, status string) model.Activity {
	return model.Activity{
		ID:       id,
		Title:    "activity",
		Status:   status,
		Priority: model.PriorityMedium,
		Category: model.CategoryWork,
		Deadline: time.Now().Add(time.Hour),
	}
}

func loadPage(t *testing.T, m Model, activities []model.Activity) Model {
	t.Helper()

	// Reload assigns the sequence number the response must carry.
	if cmd := m.Reload(); cmd == nil {
		t.Fatal("Reload returned nil cmd")
	}
	m, _ = m.Update(LoadedMsg{Seq: m.seq, Activities: activities})
	return m
}

func TestStaleResponseDiscarded(t *testing.T) {
	m := newTestModel(t, 50)

	_ = m.Reload() // seq 1
	_ = m.Reload() // seq 2, supersedes 1

	fresh := []model.Activity{activity(1, model.StatusPending)}
	stale := []model.Activity{activity(9, model.StatusMissed)}

	m, _ = m.Update(LoadedMsg{Seq: 2, Activities: fresh})
	m, _ = m.Update(LoadedMsg{Seq: 1, Activities: stale})

	got := m.Activities()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("stale response overwrote fresh page: %+v", got)
	}
}

func TestErrorKeepsExistingPage(t *testing.T) {
	m := newTestModel(t, 50)
	m = loadPage(t, m, []model.Activity{activity(1, model.StatusPending)})

	_ = m.Reload()
	m, _ = m.Update(LoadedMsg{Seq: m.seq, Err: errors.New("boom")})

	if len(m.Activities()) != 1 {
		t.Fatalf("failed fetch cleared the page: %+v", m.Activities())
	}
}

func TestNextPageEnablement(t *testing.T) {
	m := newTestModel(t, 2)

	// Full page: there may be more results.
	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
	})
	if !m.HasNextPage() {
		t.Error("full page should enable next")
	}

	// Short page: this is the last page.
	m = loadPage(t, m, []model.Activity{activity(3, model.StatusPending)})
	if m.HasNextPage() {
		t.Error("short page should disable next")
	}
}

func TestPrevPageBoundary(t *testing.T) {
	m := newTestModel(t, 50)

	if m.HasPrevPage() {
		t.Error("page 1 should disable prev")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	if got := m.Query().Page; got != 1 {
		t.Errorf("prev on page 1 moved to page %d", got)
	}
}

func TestNextPageAdvancesOnlyWhenFull(t *testing.T) {
	m := newTestModel(t, 2)
	m = loadPage(t, m, []model.Activity{activity(1, model.StatusPending)})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if got := m.Query().Page; got != 1 {
		t.Errorf("next on short page moved to page %d", got)
	}

	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if got := m.Query().Page; got != 2 {
		t.Errorf("next on full page moved to page %d, want 2", got)
	}
}

func TestPageCountsArePageScoped(t *testing.T) {
	m := newTestModel(t, 50)
	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
		activity(3, model.StatusCompleted),
		activity(4, model.StatusMissed),
	})

	c := m.PageCounts()
	if c.Pending != 2 || c.Completed != 1 || c.Missed != 1 {
		t.Errorf("counts = %+v, want 2 pending, 1 completed, 1 missed", c)
	}
}

func TestFilterCycleResetsPage(t *testing.T) {
	m := newTestModel(t, 2)
	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if m.Query().Page != 2 {
		t.Fatalf("setup: expected page 2, got %d", m.Query().Page)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})

	q := m.Query()
	if q.Status != model.StatusPending {
		t.Errorf("status filter = %q, want %q", q.Status, model.StatusPending)
	}
	if q.Page != 1 {
		t.Errorf("filter change kept page %d, want reset to 1", q.Page)
	}
}

func TestCycleWrapsAndResets(t *testing.T) {
	values := []string{"", "a", "b"}

	if got := cycle(values, ""); got != "a" {
		t.Errorf("cycle from empty = %q, want a", got)
	}
	if got := cycle(values, "b"); got != "" {
		t.Errorf("cycle wraps to %q, want empty", got)
	}
	if got := cycle(values, "zzz"); got != "" {
		t.Errorf("cycle from unknown = %q, want first entry", got)
	}
}

func TestSelectionPrunedOnReload(t *testing.T) {
	m := newTestModel(t, 50)
	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if ids := m.SelectedIDs(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("SelectedIDs = %v, want [1]", ids)
	}

	// Activity 1 disappears from the next page load.
	m = loadPage(t, m, []model.Activity{activity(2, model.StatusPending)})
	if ids := m.SelectedIDs(); len(ids) != 0 {
		t.Errorf("selection not pruned: %v", ids)
	}
}

func TestSelectAllTogglesOff(t *testing.T) {
	m := newTestModel(t, 50)
	m = loadPage(t, m, []model.Activity{
		activity(1, model.StatusPending),
		activity(2, model.StatusPending),
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if ids := m.SelectedIDs(); len(ids) != 2 {
		t.Fatalf("select all got %v", ids)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if ids := m.SelectedIDs(); len(ids) != 0 {
		t.Errorf("second select-all should clear, got %v", ids)
	}
}
