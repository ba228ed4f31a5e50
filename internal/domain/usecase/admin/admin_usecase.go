package admin

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// OperationAdjustment is the settlement operation name for admin corrections
const OperationAdjustment = "balance_adjustment"

// StatusTransitioner changes a store transaction's status inside an open transaction
type StatusTransitioner interface {
	TransitionWithin(txCtx context.Context, id string, status entity.TransactionStatus) (*entity.StoreTransaction, error)
}

// NotificationSender creates a notification inside an open transaction
type NotificationSender interface {
	SendWithin(txCtx context.Context, accountID string, req entity.NotificationRequest) (*entity.Notification, error)
}

// UseCase implements the Admin Review Workflow
type UseCase struct {
	uow           persistence.UnitOfWork
	settler       settlement.Settler
	transactions  StatusTransitioner
	notifications NotificationSender
	logger        coreport.Logger
}

var _ usecase.AdminUseCase = (*UseCase)(nil)

// NewUseCase creates the admin use case
func NewUseCase(
	uow persistence.UnitOfWork,
	settler settlement.Settler,
	transactions StatusTransitioner,
	notifications NotificationSender,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:           uow,
		settler:       settler,
		transactions:  transactions,
		notifications: notifications,
		logger:        logger,
	}
}

func (u *UseCase) requireAdmin(caller usecase.Caller, action string) error {
	if caller.IsAdmin {
		return nil
	}
	u.logger.Warn("Non-admin attempted admin action", map[string]any{
		"accountId": caller.AccountID,
		"action":    action,
	})
	return errs.ErrPermissionDenied
}

// ReviewQueue returns pending store transactions and pending promotions
func (u *UseCase) ReviewQueue(ctx context.Context, caller usecase.Caller) (*usecase.ReviewQueue, error) {
	if err := u.requireAdmin(caller, "review_queue"); err != nil {
		return nil, err
	}

	transactions, err := u.uow.GetStoreTransactionRepository(ctx).ListByStatus(ctx, entity.TransactionStatusPending)
	if err != nil {
		return nil, err
	}
	promotions, err := u.uow.GetPromotionRepository(ctx).ListByStatus(ctx, entity.PromotionStatusPending)
	if err != nil {
		return nil, err
	}

	return &usecase.ReviewQueue{
		StoreTransactions: transactions,
		Promotions:        promotions,
	}, nil
}

// IssueReceipt closes a pending store transaction and notifies its owner.
// Either both writes commit or neither does.
func (u *UseCase) IssueReceipt(
	ctx context.Context,
	caller usecase.Caller,
	transactionID string,
	req usecase.ReceiptRequest,
) (*entity.StoreTransaction, *entity.Notification, error) {
	if err := u.requireAdmin(caller, "issue_receipt"); err != nil {
		return nil, nil, err
	}
	if err := entity.Validate(req); err != nil {
		return nil, nil, err
	}

	var (
		txn          *entity.StoreTransaction
		notification *entity.Notification
	)
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		var err error
		txn, err = u.transactions.TransitionWithin(txCtx, transactionID, req.Status)
		if err != nil {
			return err
		}
		notification, err = u.notifications.SendWithin(txCtx, txn.AccountID, entity.NotificationRequest{
			Message:   req.Message,
			ImageURL:  req.ImageURL,
			FromAdmin: true,
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	u.logger.Info("Receipt issued", map[string]any{
		"adminId":        caller.AccountID,
		"transactionId":  txn.ID,
		"notificationId": notification.ID,
		"status":         txn.Status,
	})
	return txn, notification, nil
}

// AdjustBalance applies a signed correction to both balances through the executor
func (u *UseCase) AdjustBalance(ctx context.Context, caller usecase.Caller, accountID string, adj usecase.BalanceAdjustment) (*entity.Account, error) {
	if err := u.requireAdmin(caller, "adjust_balance"); err != nil {
		return nil, err
	}
	if err := entity.Validate(adj); err != nil {
		return nil, err
	}
	if adj.PointsDelta == 0 && adj.LivesDelta == 0 {
		return nil, errs.NewValidationError("pointsDelta", "at least one delta must be non-zero")
	}

	account, err := u.settler.Settle(ctx, accountID, OperationAdjustment, func(_ context.Context, account *entity.Account) error {
		return account.ApplyAdjustment(adj.PointsDelta, adj.LivesDelta)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Balance adjusted", map[string]any{
		"adminId":     caller.AccountID,
		"accountId":   accountID,
		"pointsDelta": adj.PointsDelta,
		"livesDelta":  adj.LivesDelta,
		"reason":      adj.Reason,
	})
	return account, nil
}
