package dto

import (
	"encoding/json"
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// PurchaseRequest is the tagged purchase body:
// {"type": "...", "accountId": "...", "tier": 1, "tierAmount": 10, "cost": 180}.
// The remaining fields are decoded into the variant named by type and validated there.
type PurchaseRequest struct {
	AccountID string
	Purchase  entity.Purchase
}

type purchaseEnvelope struct {
	AccountID string                 `json:"accountId"`
	Type      entity.TransactionType `json:"type"`
}

// UnmarshalJSON implements json.Unmarshaler
func (r *PurchaseRequest) UnmarshalJSON(data []byte) error {
	var envelope purchaseEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	var (
		purchase entity.Purchase
		err      error
	)
	switch envelope.Type {
	case entity.TransactionTypeExternalCurrencyRedemption:
		var v entity.ExternalCurrencyRedemption
		err = json.Unmarshal(data, &v)
		purchase = v
	case entity.TransactionTypeExtraLives:
		var v entity.ExtraLives
		err = json.Unmarshal(data, &v)
		purchase = v
	case entity.TransactionTypePointPurchase:
		var v entity.PointPurchase
		err = json.Unmarshal(data, &v)
		purchase = v
	case "":
		return errs.NewValidationError("type", "is required")
	default:
		return errs.NewValidationError("type", "must be one of external_currency_redemption extra_lives point_purchase")
	}
	if err != nil {
		return err
	}
	if err := entity.Validate(purchase); err != nil {
		return err
	}

	r.AccountID = envelope.AccountID
	r.Purchase = purchase
	return nil
}

// StoreTransactionResponse is one ledger entry of the store
type StoreTransactionResponse struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	Type       string    `json:"type"`
	Tier       int       `json:"tier"`
	TierAmount int64     `json:"tierAmount"`
	Cost       int64     `json:"cost"`
	Status     string    `json:"status"`
	Reference  string    `json:"reference,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewStoreTransactionResponse maps a store transaction
func NewStoreTransactionResponse(t *entity.StoreTransaction) StoreTransactionResponse {
	return StoreTransactionResponse{
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

// StatusRequest moves a reviewed record to a new status
type StatusRequest struct {
	Status string `json:"status"`
}

// StoreTierResponse is one catalog tier
type StoreTierResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Tier     int    `json:"tier"`
	Amount   int64  `json:"amount"`
	Cost     int64  `json:"cost"`
	Label    string `json:"label"`
	IsActive bool   `json:"isActive"`
}

// NewStoreTierResponse maps a store tier
func NewStoreTierResponse(t *entity.StoreTier) StoreTierResponse {
	return StoreTierResponse{
		ID:       t.ID,
		Category: string(t.Category),
		Tier:     t.Tier,
		Amount:   t.Amount,
		Cost:     t.Cost,
		Label:    t.Label,
		IsActive: t.IsActive,
	}
}
