package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// NotificationHandler handles account notifications
type NotificationHandler struct {
	notifications usecase.NotificationUseCase
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(notifications usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// Send handles POST /api/notifications
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.NotificationSendRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.AccountID == "" {
		fail(c, errs.NewValidationError("accountId", "is required"))
		return
	}

	notification, err := h.notifications.Send(c.Request.Context(), req.AccountID, req.NotificationRequest)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewNotificationResponse(notification))
}

// ListForAccount handles GET /api/notifications/account/:accountId
func (h *NotificationHandler) ListForAccount(c *gin.Context) {
	accountID, ok := targetAccount(c, c.Param("accountId"))
	if !ok {
		return
	}

	notifications, err := h.notifications.ListForAccount(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(notifications, dto.NewNotificationResponse))
}

// MarkRead handles PATCH /api/notifications/:id/read. Non-admins may only
// mark messages in their own inbox.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if !who.IsAdmin {
		existing, err := h.notifications.GetNotification(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		if existing.AccountID != who.AccountID {
			fail(c, errs.ErrNotificationNotFound)
			return
		}
	}

	notification, err := h.notifications.MarkRead(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationResponse(notification))
}
