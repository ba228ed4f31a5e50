package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// PaymentCodeRenderer renders the payment QR code of a pending point purchase
type PaymentCodeRenderer interface {
	Render(txn *entity.StoreTransaction) ([]byte, error)
}

// StoreHandler handles purchases, their review and the tier catalog
type StoreHandler struct {
	store    usecase.StoreUseCase
	payments PaymentCodeRenderer
}

// NewStoreHandler creates a new store handler instance
func NewStoreHandler(store usecase.StoreUseCase, payments PaymentCodeRenderer) *StoreHandler {
	return &StoreHandler{
		store:    store,
		payments: payments,
	}
}

// Purchase handles POST /api/store-transactions
func (h *StoreHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	accountID, ok := targetAccount(c, req.AccountID)
	if !ok {
		return
	}

	txn, err := h.store.Purchase(c.Request.Context(), accountID, req.Purchase)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStoreTransactionResponse(txn))
}

// Get handles GET /api/store-transactions/:id
func (h *StoreHandler) Get(c *gin.Context) {
	txn, ok := h.ownedTransaction(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreTransactionResponse(txn))
}

// PaymentQR handles GET /api/store-transactions/:id/payment-qr
func (h *StoreHandler) PaymentQR(c *gin.Context) {
	txn, ok := h.ownedTransaction(c)
	if !ok {
		return
	}

	png, err := h.payments.Render(txn)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// ownedTransaction loads :id and checks the caller may see it. Someone
// else's transaction reads as not found for non-admins.
func (h *StoreHandler) ownedTransaction(c *gin.Context) (*entity.StoreTransaction, bool) {
	who, ok := caller(c)
	if !ok {
		return nil, false
	}

	txn, err := h.store.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, false
	}
	if !who.IsAdmin && txn.AccountID != who.AccountID {
		fail(c, errs.ErrTransactionNotFound)
		return nil, false
	}
	return txn, true
}

// ListForAccount handles GET /api/store-transactions/account/:accountId
func (h *StoreHandler) ListForAccount(c *gin.Context) {
	accountID, ok := targetAccount(c, c.Param("accountId"))
	if !ok {
		return
	}

	txns, err := h.store.ListForAccount(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(txns, dto.NewStoreTransactionResponse))
}

// ListPending handles GET /api/store-transactions/pending
func (h *StoreHandler) ListPending(c *gin.Context) {
	txns, err := h.store.ListPending(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(txns, dto.NewStoreTransactionResponse))
}

// UpdateStatus handles PATCH /api/store-transactions/:id/status
func (h *StoreHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.store.UpdateStatus(c.Request.Context(), c.Param("id"), entity.TransactionStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStoreTransactionResponse(txn))
}

// ListTiers handles GET /api/store-tiers and GET /api/store-tiers/:category
func (h *StoreHandler) ListTiers(c *gin.Context) {
	var category *entity.TransactionType
	if raw := c.Param("category"); raw != "" {
		value := entity.TransactionType(raw)
		category = &value
	}

	tiers, err := h.store.ListTiers(c.Request.Context(), category)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(tiers, dto.NewStoreTierResponse))
}

// CreateTier handles POST /api/store-tiers
func (h *StoreHandler) CreateTier(c *gin.Context) {
	var input entity.StoreTierInput
	if !bindJSON(c, &input) {
		return
	}

	tier, err := h.store.CreateTier(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStoreTierResponse(tier))
}

// UpdateTier handles PATCH /api/store-tiers/:id
func (h *StoreHandler) UpdateTier(c *gin.Context) {
	var patch entity.StoreTierPatch
	if !bindJSON(c, &patch) {
		return
	}

	tier, err := h.store.UpdateTier(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreTierResponse(tier))
}
