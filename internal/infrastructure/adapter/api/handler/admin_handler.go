package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles the admin review workflow
type AdminHandler struct {
	admin usecase.AdminUseCase
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		admin: admin,
	}
}

// ReviewQueue handles GET /api/admin/review
func (h *AdminHandler) ReviewQueue(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	queue, err := h.admin.ReviewQueue(c.Request.Context(), who)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewQueueResponse(queue))
}

// IssueReceipt handles POST /api/admin/store-transactions/:id/receipt
func (h *AdminHandler) IssueReceipt(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	var req usecase.ReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, notification, err := h.admin.IssueReceipt(c.Request.Context(), who, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReceiptResponse{
		Transaction:  dto.NewStoreTransactionResponse(txn),
		Notification: dto.NewNotificationResponse(notification),
	})
}

// AdjustBalance handles POST /api/admin/accounts/:id/balance
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	var adj usecase.BalanceAdjustment
	if !bindJSON(c, &adj) {
		return
	}

	account, err := h.admin.AdjustBalance(c.Request.Context(), who, c.Param("id"), adj)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(account))
}
