package payment

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

func pendingPointPurchase() *entity.StoreTransaction {
	return &entity.StoreTransaction{
		ID:        "txn-1",
		AccountID: "acc-1",
		Type:      entity.TransactionTypePointPurchase,
		Cost:      8500,
		Status:    entity.TransactionStatusPending,
		Reference: "TRX-991",
	}
}

func TestPaymentURI(t *testing.T) {
	assert.Equal(t, "gemasgo:pay?amount=8500&currency=USDT_CENTS&ref=TRX-991&tx=txn-1", PaymentURI(pendingPointPurchase()))
}

func TestQRRenderer_Render(t *testing.T) {
	renderer := NewQRRenderer(128)

	t.Run("Pending point purchase", func(t *testing.T) {
		data, err := renderer.Render(pendingPointPurchase())

		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})

	t.Run("Settled purchase", func(t *testing.T) {
		txn := pendingPointPurchase()
		txn.Status = entity.TransactionStatusCompleted

		_, err := renderer.Render(txn)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Points-paid purchase", func(t *testing.T) {
		txn := pendingPointPurchase()
		txn.Type = entity.TransactionTypeExtraLives

		_, err := renderer.Render(txn)

		assert.Contains(t, errs.ValidationDetails(err), "type")
	})
}
