package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// PromotionHandler handles video promotion requests
type PromotionHandler struct {
	promotions usecase.PromotionUseCase
}

// NewPromotionHandler creates a new promotion handler instance
func NewPromotionHandler(promotions usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{
		promotions: promotions,
	}
}

// Quote handles GET /api/video-promotions/quote
func (h *PromotionHandler) Quote(c *gin.Context) {
	goalAmount, ok := queryInt64(c, "goalAmount")
	if !ok {
		return
	}
	durationDays, ok := queryInt64(c, "durationDays")
	if !ok {
		return
	}
	goalType := entity.GoalType(c.Query("goalType"))

	cost, err := h.promotions.Quote(goalType, goalAmount, int(durationDays))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{
		GoalType:     string(goalType),
		GoalAmount:   goalAmount,
		DurationDays: int(durationDays),
		Cost:         cost,
	})
}

// Submit handles POST /api/video-promotions
func (h *PromotionHandler) Submit(c *gin.Context) {
	var req dto.PromotionSubmitRequest
	if !bindJSON(c, &req) {
		return
	}
	accountID, ok := targetAccount(c, req.AccountID)
	if !ok {
		return
	}

	promotion, err := h.promotions.Submit(c.Request.Context(), accountID, req.PromotionRequest)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPromotionResponse(promotion))
}

// ListForAccount handles GET /api/video-promotions/account/:accountId
func (h *PromotionHandler) ListForAccount(c *gin.Context) {
	accountID, ok := targetAccount(c, c.Param("accountId"))
	if !ok {
		return
	}

	promotions, err := h.promotions.ListForAccount(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(promotions, dto.NewPromotionResponse))
}

// ListByStatus handles GET /api/video-promotions?status=
func (h *PromotionHandler) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", string(entity.PromotionStatusPending))

	promotions, err := h.promotions.ListByStatus(c.Request.Context(), entity.PromotionStatus(status))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(promotions, dto.NewPromotionResponse))
}

// UpdateStatus handles PATCH /api/video-promotions/:id/status
func (h *PromotionHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := entity.PromotionStatus(req.Status)
	if !status.IsValid() {
		fail(c, errs.NewValidationError("status", "must be one of pending approved rejected active completed"))
		return
	}

	promotion, err := h.promotions.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPromotionResponse(promotion))
}
