package repository

import (
	"errors"

	"gorm.io/gorm"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// base carries what every gorm repository needs
type base struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

func newBase(db *gorm.DB, logger coreport.Logger) base {
	return base{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// handleDatabaseError maps err and logs it at a level matching its kind
func (b base) handleDatabaseError(operation string, err error, notFound error, fields map[string]any) error {
	mapped := b.errorClassifier.MapError(err, notFound)

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	switch {
	case errors.Is(mapped, errs.ErrNotFound), errors.Is(mapped, errs.ErrDuplicateKey):
		b.logger.Debug("Database lookup miss", logFields)
	case errors.Is(mapped, errs.ErrConcurrentUpdate), errors.Is(mapped, errs.ErrValidation):
		b.logger.Warn("Database write rejected", logFields)
	default:
		b.logger.Error("Database error", logFields)
	}
	return mapped
}
