package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/middleware"
)

// fail hands err to middleware.ErrorHandler for rendering
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes the request body into dst and reports decoding problems
// as validation errors
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, bodyError(err))
		return false
	}
	return true
}

func bodyError(err error) error {
	if errs.IsValidationError(err) {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewValidationError(typeErr.Field, "must be a "+typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return errs.NewValidationError("body", "is required")
	}
	return errs.NewValidationError("body", "malformed JSON")
}

// caller returns the authenticated caller. Routes using it sit behind RequireAuth.
func caller(c *gin.Context) (usecase.Caller, bool) {
	who, ok := middleware.CallerFrom(c)
	if !ok {
		fail(c, errs.ErrUnauthenticated)
	}
	return who, ok
}

// targetAccount resolves which account a request acts on. Empty means the
// caller's own account, anything else needs ownership or admin rights.
func targetAccount(c *gin.Context, requested string) (string, bool) {
	who, ok := caller(c)
	if !ok {
		return "", false
	}
	if requested == "" || requested == who.AccountID {
		return who.AccountID, true
	}
	if !who.IsAdmin {
		fail(c, errs.ErrPermissionDenied)
		return "", false
	}
	return requested, true
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fail(c, errs.NewValidationError(name, "must be an integer"))
		return 0, false
	}
	return value, true
}
