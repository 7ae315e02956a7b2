package store

import (
	"context"
	"testing"
	"time"

	"github.com/pvu/accountable/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.runMigrations(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestCreateAndListNotifications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreateNotification(ctx, model.Notification{
		Kind:  model.NotificationKindMissed,
		Title: "Missed Activity",
		Body:  "Pay rent",
	})
	if err != nil {
		t.Fatal(err)
	}

	notifications, err := s.ListNotifications(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications))
	}

	n := notifications[0]
	if n.ID == "" {
		t.Error("expected generated ID")
	}
	if n.Kind != model.NotificationKindMissed || n.Body != "Pay rent" {
		t.Errorf("notification = %+v", n)
	}
	if n.Read {
		t.Error("new notification should be unread")
	}
	if n.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.CreateNotification(ctx, model.Notification{
			Kind:  model.NotificationKindEvent,
			Title: "Accountability Update",
		}); err != nil {
			t.Fatal(err)
		}
	}

	unread, err := s.GetUnreadNotifications(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 3 {
		t.Fatalf("unread = %d, want 3", len(unread))
	}

	if err := s.MarkAllNotificationsRead(ctx); err != nil {
		t.Fatal(err)
	}

	unread, err = s.GetUnreadNotifications(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 0 {
		t.Fatalf("unread after mark-all = %d, want 0", len(unread))
	}

	// The log itself is preserved.
	all, err := s.ListNotifications(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("log length = %d, want 3", len(all))
	}
}

func TestListNotificationsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		err := s.CreateNotification(ctx, model.Notification{
			Kind:      model.NotificationKindEvent,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	notifications, err := s.ListNotifications(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d, want limit 2", len(notifications))
	}
	if notifications[0].Title != "new" || notifications[1].Title != "mid" {
		t.Errorf("order = %s, %s", notifications[0].Title, notifications[1].Title)
	}
}
