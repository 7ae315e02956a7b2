package store

import (
	"context"

	"github.com/pvu/accountable/internal/model"
)

// Store is the local persistence interface for the notification log.
// Activities themselves are never stored locally; the backend owns them
// and the client only holds transient copies.
type Store interface {
	CreateNotification(ctx context.Context, n model.Notification) error
	GetUnreadNotifications(ctx context.Context) ([]model.Notification, error)
	ListNotifications(ctx context.Context, limit int) ([]model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
	Close() error
}
