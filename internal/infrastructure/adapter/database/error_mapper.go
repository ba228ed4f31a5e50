package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised while opening or finishing a transaction
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a driver error to the domain taxonomy. Context errors and
// errors that already carry a domain sentinel pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if isDomainError(err) {
		return err
	}
	mapped := m.classifier.MapError(err, errs.ErrNotFound)
	if errors.Is(mapped, errs.ErrInternalServer) {
		return fmt.Errorf("%s: %w", operation, mapped)
	}
	return mapped
}

// IsRetryable reports whether the whole transaction may be run again
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errs.ErrConcurrentUpdate) {
		return true
	}
	return m.classifier.IsLockError(err)
}

func isDomainError(err error) bool {
	return errs.ErrorCode(err) != errs.CodeInternalServer ||
		errors.Is(err, errs.ErrInternalServer) ||
		errors.Is(err, errs.ErrDatabaseConnection)
}
