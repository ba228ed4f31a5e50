package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error as the standard error body
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":     recovered,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"clientIp":  c.ClientIP(),
					"requestId": c.GetHeader("X-Request-ID"),
					"userAgent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errs.ErrInternalServer))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := errs.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", map[string]any{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
				"error":  err.Error(),
			})
		}
		c.JSON(status, dto.NewErrorResponse(err))
	}
}
