package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	now := provider.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, provider.Since(now), core.Duration(0))

	ctx, cancel := provider.WithTimeout(context.Background(), core.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
