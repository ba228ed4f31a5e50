package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// NotificationRepository stores account notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// GetByID returns ErrNotificationNotFound when the notification doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Notification, error)

	// MarkRead flips isRead and returns the updated notification
	//
	// Possible errors:
	// - ErrNotificationNotFound: If the notification doesn't exist
	MarkRead(ctx context.Context, id string) (*entity.Notification, error)

	// ListByAccount returns the account's notifications newest-first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error)
}
