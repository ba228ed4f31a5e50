package notification

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

// UseCase implements the Notification/Receipt Service
type UseCase struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.NotificationUseCase = (*UseCase)(nil)

// NewUseCase creates the notification use case
func NewUseCase(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Send delivers an unread notification to an existing account
func (u *UseCase) Send(ctx context.Context, accountID string, req entity.NotificationRequest) (*entity.Notification, error) {
	var notification *entity.Notification
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		var err error
		notification, err = u.SendWithin(txCtx, accountID, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return notification, nil
}

// SendWithin creates the notification in the transaction already open in txCtx
func (u *UseCase) SendWithin(txCtx context.Context, accountID string, req entity.NotificationRequest) (*entity.Notification, error) {
	if err := entity.Validate(req); err != nil {
		return nil, err
	}
	if _, err := u.uow.GetAccountRepository(txCtx).GetByID(txCtx, accountID); err != nil {
		return nil, err
	}

	notification := entity.NewNotification(u.ids.NewID(), accountID, req, u.timeProvider.Now())
	if err := u.uow.GetNotificationRepository(txCtx).Create(txCtx, notification); err != nil {
		return nil, err
	}

	u.logger.Info("Notification sent", map[string]any{
		"notificationId": notification.ID,
		"accountId":      accountID,
		"fromAdmin":      notification.FromAdmin,
	})
	return notification, nil
}

// GetNotification returns one notification
func (u *UseCase) GetNotification(ctx context.Context, id string) (*entity.Notification, error) {
	return u.uow.GetNotificationRepository(ctx).GetByID(ctx, id)
}

// MarkRead flips the read flag
func (u *UseCase) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	return u.uow.GetNotificationRepository(ctx).MarkRead(ctx, id)
}

// ListForAccount returns the account's notifications newest-first
func (u *UseCase) ListForAccount(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.uow.GetNotificationRepository(ctx).ListByAccount(ctx, accountID)
}
