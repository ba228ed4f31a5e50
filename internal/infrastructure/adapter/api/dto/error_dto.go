package dto

import (
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorResponse builds the body for err. Server errors never leak their cause.
func NewErrorResponse(err error) ErrorResponse {
	code := errs.ErrorCode(err)
	if code == errs.CodeInternalServer {
		return ErrorResponse{Code: code, Message: "Internal server error"}
	}
	return ErrorResponse{
		Code:    code,
		Message: err.Error(),
		Details: errs.ValidationDetails(err),
	}
}
