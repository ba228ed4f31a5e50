package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// Account is the database row for entity.Account
type Account struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)"`
	Username      string    `gorm:"uniqueIndex;not null;size:50"`
	Email         string    `gorm:"size:255"`
	PasswordHash  string    `gorm:"not null;size:255"`
	Language      string    `gorm:"not null;size:2"`
	PointsBalance int64     `gorm:"not null"`
	LivesBalance  int64     `gorm:"not null"`
	IsAdmin       bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// NewAccount converts an entity into a row
func NewAccount(a *entity.Account) *Account {
	return &Account{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		PasswordHash:  a.PasswordHash,
		Language:      a.Language,
		PointsBalance: a.Points(),
		LivesBalance:  a.Lives(),
		IsAdmin:       a.IsAdmin,
		CreatedAt:     a.CreatedAt,
	}
}

// ToEntity hydrates the domain account. Stored balances are guarded by check
// constraints, so a negative value here means the row is corrupt.
func (m *Account) ToEntity() (*entity.Account, error) {
	account := &entity.Account{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Language:     m.Language,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
	}
	if err := account.SetBalances(m.PointsBalance, m.LivesBalance); err != nil {
		return nil, err
	}
	return account, nil
}
