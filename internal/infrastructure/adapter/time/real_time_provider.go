package time

import (
	"context"
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

var _ core.TimeProvider = RealTimeProvider{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() RealTimeProvider {
	return RealTimeProvider{}
}

// Now returns the current time in UTC so stored timestamps never carry a local zone
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
