package statsview

import (
	"strings"
	"testing"

	"github.com/pvu/accountable/internal/keys"
	"github.com/pvu/accountable/internal/model"
)

func TestCompletionRateRenderedVerbatim(t *testing.T) {
	// The backend reports completion_rate already as a percentage.
	k := keys.DefaultKeyMap()
	m := New(nil, &k, 80, 24)

	m, _ = m.Update(LoadedMsg{Stats: &model.Stats{
		TotalActivities:     28,
		CompletedActivities: 12,
		CompletionRate:      43.5,
	}})

	view := m.View()
	if !strings.Contains(view, "43.5%") {
		t.Errorf("view should show 43.5%%, got:\n%s", view)
	}
	if strings.Contains(view, "4350") {
		t.Error("completion rate was scaled up, want it rendered as-is")
	}
}
