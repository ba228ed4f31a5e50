package entity

import "time"

// Notification is a message delivered to an account, typically a purchase receipt
type Notification struct {
	ID        string
	AccountID string
	FromAdmin bool
	Message   string
	ImageURL  *string
	IsRead    bool
	CreatedAt time.Time
}

// NotificationRequest is a validated send request
type NotificationRequest struct {
	Message   string  `json:"message" validate:"required,max=2000"`
	ImageURL  *string `json:"imageUrl" validate:"omitempty,url"`
	FromAdmin bool    `json:"fromAdmin"`
}

// NewNotification creates an unread notification
func NewNotification(id, accountID string, req NotificationRequest, now time.Time) *Notification {
	return &Notification{
		ID:        id,
		AccountID: accountID,
		FromAdmin: req.FromAdmin,
		Message:   req.Message,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
	}
}
