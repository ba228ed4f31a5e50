package dto

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

// NotificationSendRequest addresses a notification to an account
type NotificationSendRequest struct {
	AccountID string `json:"accountId"`
	entity.NotificationRequest
}

// NotificationResponse is one message in an account's inbox
type NotificationResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	FromAdmin bool      `json:"fromAdmin"`
	Message   string    `json:"message"`
	ImageURL  *string   `json:"imageUrl"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotificationResponse maps a notification
func NewNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		AccountID: n.AccountID,
		FromAdmin: n.FromAdmin,
		Message:   n.Message,
		ImageURL:  n.ImageURL,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ReviewQueueResponse lists everything waiting for an admin
type ReviewQueueResponse struct {
	StoreTransactions []StoreTransactionResponse `json:"storeTransactions"`
	Promotions        []PromotionResponse        `json:"promotions"`
}

// NewReviewQueueResponse maps the review queue
func NewReviewQueueResponse(q *usecase.ReviewQueue) ReviewQueueResponse {
	return ReviewQueueResponse{
		StoreTransactions: MapAll(q.StoreTransactions, NewStoreTransactionResponse),
		Promotions:        MapAll(q.Promotions, NewPromotionResponse),
	}
}

// ReceiptResponse pairs the closed transaction with the receipt sent for it
type ReceiptResponse struct {
	Transaction  StoreTransactionResponse `json:"transaction"`
	Notification NotificationResponse     `json:"notification"`
}
