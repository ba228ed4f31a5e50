// Package testclock provides a controllable core.TimeProvider for tests
package testclock

import (
	"context"
	"sync"
	"time"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// Clock reports a fixed time that only moves when Advance is called.
// Timeouts still use the wall clock so contexts expire normally.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

var _ coreport.TimeProvider = (*Clock)(nil)

// New creates a clock stopped at now
func New(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now implements core.TimeProvider
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since implements core.TimeProvider
func (c *Clock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

// WithTimeout implements core.TimeProvider
func (c *Clock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
