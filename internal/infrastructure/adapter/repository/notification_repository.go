package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// NotificationRepository implements persistence.NotificationRepository using GORM
type NotificationRepository struct {
	base
}

var _ persistence.NotificationRepository = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{base: newBase(db, logger)}
}

// Create inserts a notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := r.db.WithContext(ctx).Create(model.NewNotification(notification)).Error; err != nil {
		return r.handleDatabaseError("create notification", err, errs.ErrAccountNotFound, map[string]any{"accountId": notification.AccountID})
	}
	return nil
}

// GetByID returns one notification
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var row model.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("get notification", err, errs.ErrNotificationNotFound, map[string]any{"notificationId": id})
	}
	return row.ToEntity(), nil
}

// MarkRead flags the notification as read and returns it
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	fields := map[string]any{"notificationId": id}

	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return nil, r.handleDatabaseError("mark notification read", result.Error, errs.ErrNotificationNotFound, fields)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrNotificationNotFound
	}

	return r.GetByID(ctx, id)
}

// ListByAccount returns the account's notifications newest-first
func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	var rows []model.Notification
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list notifications", err, errs.ErrNotificationNotFound, map[string]any{"accountId": accountID})
	}

	notifications := make([]*entity.Notification, 0, len(rows))
	for i := range rows {
		notifications = append(notifications, rows[i].ToEntity())
	}
	return notifications, nil
}
