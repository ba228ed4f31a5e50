package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds  = 4001
	CodeValidation         = 4002
	CodeDuplicateKey       = 4003
	CodeUnauthenticated    = 4010
	CodePermissionDenied   = 4030
	CodeNotFound           = 4040
	CodeConcurrentUpdate   = 4090
	CodeInvalidCredentials = 4011
	CodeRateLimited        = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error kinds
var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a balance cannot cover a settlement
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateKey is returned when a unique value is already taken
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrPermissionDenied is returned when a non-admin calls an admin-only operation
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials is returned when username or password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when the caller could not be identified
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrConcurrentUpdate is returned when the database aborted a transaction because of contention
	ErrConcurrentUpdate = errors.New("concurrent update, please retry")

	// ErrRateLimited is returned when a caller exceeded its request quota
	ErrRateLimited = errors.New("too many requests")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Specific not-found and duplicate errors. Each one wraps its kind so errors.Is
// against the kind keeps working.
var (
	ErrAccountNotFound      = fmt.Errorf("account %w", ErrNotFound)
	ErrGameNotFound         = fmt.Errorf("game %w", ErrNotFound)
	ErrTransactionNotFound  = fmt.Errorf("store transaction %w", ErrNotFound)
	ErrPromotionNotFound    = fmt.Errorf("video promotion %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrTierNotFound         = fmt.Errorf("store tier %w", ErrNotFound)

	ErrDuplicateUsername = fmt.Errorf("username already exists: %w", ErrDuplicateKey)

	ErrInvalidStatusTransition = fmt.Errorf("invalid status transition: %w", ErrValidation)
	ErrGameInactive            = fmt.Errorf("game is not active: %w", ErrValidation)
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateKey):
		return CodeDuplicateKey
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrPermissionDenied):
		return CodePermissionDenied
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error kind to the status code surfaced by the API
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError describes one rejected input field
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a single-field validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidationErrors collects several field errors reported together
type ValidationErrors []*ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Is checks if the target error is an ErrValidation
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Details returns the field -> reason map used in API responses
func (e ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(e))
	for _, fe := range e {
		details[fe.Field] = fe.Reason
	}
	return details
}

// ValidationDetails extracts field-level details from any validation error
func ValidationDetails(err error) map[string]string {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many.Details()
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return map[string]string{single.Field: single.Reason}
	}
	return nil
}

// InsufficientFundsError provides detailed error information for a failed precondition
type InsufficientFundsError struct {
	AccountID string
	Resource  string // "points" or "lives"
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s for account %s: required %d, available %d",
		e.Resource, e.AccountID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"resource":   e.Resource,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientPointsError creates an insufficient funds error for the points balance
func NewInsufficientPointsError(accountID string, required, available int64) error {
	return &InsufficientFundsError{AccountID: accountID, Resource: "points", Required: required, Available: available}
}

// NewInsufficientLivesError creates an insufficient funds error for the lives balance
func NewInsufficientLivesError(accountID string, required, available int64) error {
	return &InsufficientFundsError{AccountID: accountID, Resource: "lives", Required: required, Available: available}
}

// SettlementError wraps a failure inside a settlement with the operation that produced it
type SettlementError struct {
	AccountID string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *SettlementError) Error() string {
	return fmt.Sprintf("%s settlement failed for account %s: %v", e.Operation, e.AccountID, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "settlement_error",
		"account_id": e.AccountID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSettlementError creates a settlement error
func NewSettlementError(accountID, operation string, err error) error {
	return &SettlementError{AccountID: accountID, Operation: operation, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInsufficientFundsError checks if the error is a failed balance precondition
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsValidationError checks if the error is caused by malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsPermissionDeniedError checks if the error rejects a non-admin caller
func IsPermissionDeniedError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsConcurrentUpdateError checks if the error is a retryable contention failure
func IsConcurrentUpdateError(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}

// IsDuplicateKeyError checks if the error is a unique constraint collision
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
