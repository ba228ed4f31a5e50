package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// StoreTransaction is the ledger row of one purchase
type StoreTransaction struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)"`
	AccountID  string    `gorm:"not null;index;type:varchar(64)"`
	Type       string    `gorm:"not null;size:40"`
	Tier       int       `gorm:"not null"`
	TierAmount int64     `gorm:"not null"`
	Cost       int64     `gorm:"not null"`
	Status     string    `gorm:"not null;size:20;index"`
	Reference  string    `gorm:"size:128"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for StoreTransaction
func (StoreTransaction) TableName() string {
	return "store_transactions"
}

// NewStoreTransaction converts an entity into a row
func NewStoreTransaction(t *entity.StoreTransaction) *StoreTransaction {
	return &StoreTransaction{
		ID:         t.ID,
		AccountID:  t.AccountID,
		Type:       string(t.Type),
		Tier:       t.Tier,
		TierAmount: t.TierAmount,
		Cost:       t.Cost,
		Status:     string(t.Status),
		Reference:  t.Reference,
		CreatedAt:  t.CreatedAt,
	}
}

// ToEntity converts the row back
func (m *StoreTransaction) ToEntity() *entity.StoreTransaction {
	return &entity.StoreTransaction{
		ID:         m.ID,
		AccountID:  m.AccountID,
		Type:       entity.TransactionType(m.Type),
		Tier:       m.Tier,
		TierAmount: m.TierAmount,
		Cost:       m.Cost,
		Status:     entity.TransactionStatus(m.Status),
		Reference:  m.Reference,
		CreatedAt:  m.CreatedAt,
	}
}

// StoreTier is a catalog row; (category, tier) is unique
type StoreTier struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Category  string    `gorm:"not null;size:40;uniqueIndex:idx_store_tiers_category_tier,priority:1"`
	Tier      int       `gorm:"not null;uniqueIndex:idx_store_tiers_category_tier,priority:2"`
	Amount    int64     `gorm:"not null"`
	Cost      int64     `gorm:"not null"`
	Label     string    `gorm:"not null;size:100"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for StoreTier
func (StoreTier) TableName() string {
	return "store_tiers"
}

// NewStoreTier converts an entity into a row
func NewStoreTier(t *entity.StoreTier) *StoreTier {
	return &StoreTier{
		ID:        t.ID,
		Category:  string(t.Category),
		Tier:      t.Tier,
		Amount:    t.Amount,
		Cost:      t.Cost,
		Label:     t.Label,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

// ToEntity converts the row back
func (m *StoreTier) ToEntity() *entity.StoreTier {
	return &entity.StoreTier{
		ID:        m.ID,
		Category:  entity.TransactionType(m.Category),
		Tier:      m.Tier,
		Amount:    m.Amount,
		Cost:      m.Cost,
		Label:     m.Label,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
