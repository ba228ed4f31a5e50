package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// Notification is an admin-to-user message row
type Notification struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	AccountID string    `gorm:"not null;index;type:varchar(64)"`
	FromAdmin bool      `gorm:"not null"`
	Message   string    `gorm:"not null;type:text"`
	ImageURL  *string   `gorm:"size:2048"`
	IsRead    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// NewNotification converts an entity into a row
func NewNotification(n *entity.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		AccountID: n.AccountID,
		FromAdmin: n.FromAdmin,
		Message:   n.Message,
		ImageURL:  n.ImageURL,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToEntity converts the row back
func (m *Notification) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		AccountID: m.AccountID,
		FromAdmin: m.FromAdmin,
		Message:   m.Message,
		ImageURL:  m.ImageURL,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
