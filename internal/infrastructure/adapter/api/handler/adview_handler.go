package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// AdViewHandler handles ad view settlement requests
type AdViewHandler struct {
	adViews usecase.AdViewUseCase
}

// NewAdViewHandler creates a new ad view handler instance
func NewAdViewHandler(adViews usecase.AdViewUseCase) *AdViewHandler {
	return &AdViewHandler{adViews: adViews}
}

// Record handles POST /api/ad-views
func (h *AdViewHandler) Record(c *gin.Context) {
	var req dto.AdViewRequest
	if !bindJSON(c, &req) {
		return
	}
	accountID, ok := targetAccount(c, req.AccountID)
	if !ok {
		return
	}

	record, err := h.adViews.RecordAdView(c.Request.Context(), accountID, req.Value())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAdViewResponse(record))
}

// ListForAccount handles GET /api/ad-views/account/:accountId
func (h *AdViewHandler) ListForAccount(c *gin.Context) {
	accountID, ok := targetAccount(c, c.Param("accountId"))
	if !ok {
		return
	}

	records, err := h.adViews.ListForAccount(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(records, dto.NewAdViewResponse))
}

// Stats handles GET /api/ad-views/stats
func (h *AdViewHandler) Stats(c *gin.Context) {
	stats, err := h.adViews.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdViewStatsResponse(stats))
}
