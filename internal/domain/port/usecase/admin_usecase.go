package usecase

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// ReviewQueue is everything waiting for an admin decision
type ReviewQueue struct {
	StoreTransactions []*entity.StoreTransaction
	Promotions        []*entity.VideoPromotion
}

// ReceiptRequest closes a pending store transaction and notifies its owner
type ReceiptRequest struct {
	Status   entity.TransactionStatus `json:"status" validate:"required,oneof=completed cancelled"`
	Message  string                   `json:"message" validate:"required,max=2000"`
	ImageURL *string                  `json:"imageUrl" validate:"omitempty,url"`
}

// BalanceAdjustment is a signed admin correction
type BalanceAdjustment struct {
	PointsDelta int64  `json:"pointsDelta"`
	LivesDelta  int64  `json:"livesDelta"`
	Reason      string `json:"reason" validate:"required,max=500"`
}

// AdminUseCase defines the Admin Review Workflow. Every method requires an admin caller.
type AdminUseCase interface {
	ReviewQueue(ctx context.Context, caller Caller) (*ReviewQueue, error)

	// IssueReceipt transitions the transaction and sends the receipt as one unit
	IssueReceipt(ctx context.Context, caller Caller, transactionID string, req ReceiptRequest) (*entity.StoreTransaction, *entity.Notification, error)

	// AdjustBalance applies both deltas or neither
	AdjustBalance(ctx context.Context, caller Caller, accountID string, adj BalanceAdjustment) (*entity.Account, error)
}
