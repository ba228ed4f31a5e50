package payment

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/skip2/go-qrcode"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// DefaultQRSize is the PNG edge length in pixels
const DefaultQRSize = 256

// QRRenderer renders the payment reference of a pending point purchase as a PNG QR code
type QRRenderer struct {
	size int
}

// NewQRRenderer creates a renderer producing size x size images
func NewQRRenderer(size int) *QRRenderer {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &QRRenderer{size: size}
}

// PaymentURI is the payload encoded in the QR code
func PaymentURI(txn *entity.StoreTransaction) string {
	query := url.Values{}
	query.Set("tx", txn.ID)
	query.Set("amount", strconv.FormatInt(txn.Cost, 10))
	query.Set("currency", "USDT_CENTS")
	if txn.Reference != "" {
		query.Set("ref", txn.Reference)
	}
	return "gemasgo:pay?" + query.Encode()
}

// Render returns the PNG bytes. Only pending point purchases have something to pay.
func (r *QRRenderer) Render(txn *entity.StoreTransaction) ([]byte, error) {
	if txn.Type != entity.TransactionTypePointPurchase {
		return nil, errs.NewValidationError("type", "payment codes exist only for point purchases")
	}
	if txn.Status != entity.TransactionStatusPending {
		return nil, errs.NewValidationError("status", "transaction is no longer awaiting payment")
	}

	png, err := qrcode.Encode(PaymentURI(txn), qrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr: %w", err)
	}
	return png, nil
}
