package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	ForeignKeyError   ErrorType = "foreign_key"
)

// PostgreSQL SQLSTATE codes the classifier understands
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
)

// ErrorClassifier provides methods to classify database errors. It prefers the
// driver's SQLSTATE and falls back to message matching for wrapped errors.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code, _, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint"))
}

// IsLockError checks if the error is a serialization, deadlock or lock timeout failure
func (c *ErrorClassifier) IsLockError(err error) bool {
	if code, _, ok := pgCode(err); ok {
		return code == pgSerializationFailure || code == pgDeadlockDetected || code == pgLockNotAvailable
	}
	return err != nil && (strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "lock timeout") ||
		strings.Contains(err.Error(), "could not serialize access"))
}

// IsForeignKeyError checks if a referenced row is missing
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if code, _, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "foreign key constraint")
}

// IsConstraintError checks for check and not-null violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if code, _, ok := pgCode(err); ok {
		return code == pgCheckViolation || code == pgNotNullViolation
	}
	return err != nil && (strings.Contains(err.Error(), "check constraint") ||
		strings.Contains(err.Error(), "violates not-null"))
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if code, _, ok := pgCode(err); ok {
		return code == pgQueryCanceled
	}
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "unexpected eof")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "no connection") ||
		c.IsTransientError(err)
}

// MapError translates a driver error into the domain taxonomy. notFound is
// returned for missing rows so callers get the entity-specific error.
func (c *ErrorClassifier) MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	_, constraint, _ := pgCode(err)
	switch c.Classify(err) {
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateKey, constraint)
	case LockError:
		return fmt.Errorf("%w: %v", errs.ErrConcurrentUpdate, err)
	case ForeignKeyError:
		return fmt.Errorf("referenced row missing (%s): %w", constraint, errs.ErrNotFound)
	case ConstraintError:
		if constraint == "" {
			constraint = "row"
		}
		return errs.NewValidationError(constraint, "violates a database constraint")
	case TransientError, ConnectionError:
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
}
