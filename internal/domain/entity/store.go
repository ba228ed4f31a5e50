package entity

import (
	"time"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// TransactionType names the kind of store purchase. The same values are used
// as store tier categories.
type TransactionType string

const (
	// TransactionTypeExternalCurrencyRedemption trades points for an in-game currency pack
	TransactionTypeExternalCurrencyRedemption TransactionType = "external_currency_redemption"
	// TransactionTypeExtraLives trades points for game lives
	TransactionTypeExtraLives TransactionType = "extra_lives"
	// TransactionTypePointPurchase buys points with an off-platform payment
	TransactionTypePointPurchase TransactionType = "point_purchase"
)

// IsValid reports whether t is a known purchase type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExternalCurrencyRedemption, TransactionTypeExtraLives, TransactionTypePointPurchase:
		return true
	}
	return false
}

// DeductsPoints reports whether a purchase of this type is paid with points
func (t TransactionType) DeductsPoints() bool {
	return t == TransactionTypeExternalCurrencyRedemption || t == TransactionTypeExtraLives
}

// TransactionStatus is the lifecycle state of a store transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}

// StoreTransaction is the ledger record of one purchase. Only Status changes after creation.
type StoreTransaction struct {
	ID         string
	AccountID  string
	Type       TransactionType
	Tier       int
	TierAmount int64
	Cost       int64
	Status     TransactionStatus
	Reference  string
	CreatedAt  time.Time
}

// TransitionTo moves a pending transaction to a terminal status
func (t *StoreTransaction) TransitionTo(status TransactionStatus) error {
	if !status.IsValid() {
		return errs.NewValidationError("status", "must be one of pending completed cancelled")
	}
	if t.Status != TransactionStatusPending || status == TransactionStatusPending {
		return errs.ErrInvalidStatusTransition
	}
	t.Status = status
	return nil
}

// PurchaseTerms is the normalized view every purchase variant reduces to
type PurchaseTerms struct {
	Tier       int
	TierAmount int64
	Cost       int64
	Reference  string
}

// Purchase is the tagged variant over the three purchase types.
// Each implementation carries and validates its own field set.
type Purchase interface {
	Kind() TransactionType
	Terms() PurchaseTerms
}

// ExternalCurrencyRedemption redeems points for a game-currency pack
type ExternalCurrencyRedemption struct {
	Tier           int    `json:"tier" validate:"gte=0"`
	TierAmount     int64  `json:"tierAmount" validate:"gt=0"`
	Cost           int64  `json:"cost" validate:"gt=0"`
	GameAccountRef string `json:"gameAccountRef" validate:"omitempty,max=64"`
}

// Kind implements Purchase
func (p ExternalCurrencyRedemption) Kind() TransactionType {
	return TransactionTypeExternalCurrencyRedemption
}

// Terms implements Purchase
func (p ExternalCurrencyRedemption) Terms() PurchaseTerms {
	return PurchaseTerms{Tier: p.Tier, TierAmount: p.TierAmount, Cost: p.Cost, Reference: p.GameAccountRef}
}

// ExtraLives buys game lives with points. TierAmount is the number of lives.
type ExtraLives struct {
	Tier       int   `json:"tier" validate:"gte=0"`
	TierAmount int64 `json:"tierAmount" validate:"gt=0"`
	Cost       int64 `json:"cost" validate:"gt=0"`
}

// Kind implements Purchase
func (p ExtraLives) Kind() TransactionType {
	return TransactionTypeExtraLives
}

// Terms implements Purchase
func (p ExtraLives) Terms() PurchaseTerms {
	return PurchaseTerms{Tier: p.Tier, TierAmount: p.TierAmount, Cost: p.Cost}
}

// PointPurchase requests points paid off-platform. TierAmount is the number of
// points, Cost is the price in USDT cents and is never deducted from the points balance.
type PointPurchase struct {
	Tier       int    `json:"tier" validate:"gte=0"`
	TierAmount int64  `json:"tierAmount" validate:"gt=0"`
	Cost       int64  `json:"cost" validate:"gt=0"`
	PaymentRef string `json:"paymentRef" validate:"omitempty,max=128"`
}

// Kind implements Purchase
func (p PointPurchase) Kind() TransactionType {
	return TransactionTypePointPurchase
}

// Terms implements Purchase
func (p PointPurchase) Terms() PurchaseTerms {
	return PurchaseTerms{Tier: p.Tier, TierAmount: p.TierAmount, Cost: p.Cost, Reference: p.PaymentRef}
}

// NewStoreTransaction records a purchase. Point-paid types settle immediately,
// point purchases wait for an admin.
func NewStoreTransaction(id, accountID string, p Purchase, now time.Time) *StoreTransaction {
	terms := p.Terms()
	status := TransactionStatusCompleted
	if !p.Kind().DeductsPoints() {
		status = TransactionStatusPending
	}
	return &StoreTransaction{
		ID:         id,
		AccountID:  accountID,
		Type:       p.Kind(),
		Tier:       terms.Tier,
		TierAmount: terms.TierAmount,
		Cost:       terms.Cost,
		Status:     status,
		Reference:  terms.Reference,
		CreatedAt:  now,
	}
}

// StoreTier is catalog reference data, never touched by settlement
type StoreTier struct {
	ID        string
	Category  TransactionType
	Tier      int
	Amount    int64
	Cost      int64
	Label     string
	IsActive  bool
	CreatedAt time.Time
}

// StoreTierInput is the validated create payload for a tier
type StoreTierInput struct {
	Category TransactionType `json:"category" validate:"required,oneof=external_currency_redemption extra_lives point_purchase"`
	Tier     int             `json:"tier" validate:"gte=1"`
	Amount   int64           `json:"amount" validate:"gt=0"`
	Cost     int64           `json:"cost" validate:"gte=0"`
	Label    string          `json:"label" validate:"required,max=100"`
	IsActive *bool           `json:"isActive"`
}

// StoreTierPatch lists the tier fields an admin may change
type StoreTierPatch struct {
	Amount   *int64  `json:"amount" validate:"omitempty,gt=0"`
	Cost     *int64  `json:"cost" validate:"omitempty,gte=0"`
	Label    *string `json:"label" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

// Apply copies the set fields onto t
func (p StoreTierPatch) Apply(t *StoreTier) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Cost != nil {
		t.Cost = *p.Cost
	}
	if p.Label != nil {
		t.Label = *p.Label
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
}
