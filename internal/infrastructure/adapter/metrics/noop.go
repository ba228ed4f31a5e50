package metrics

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// Noop discards every observation. Used by CLI commands that never serve /metrics.
type Noop struct{}

var _ core.Metrics = Noop{}

func (Noop) RecordSettlement(string, string, core.Duration) {}
func (Noop) AddPointsCredited(string, int64) {}
func (Noop) ObserveHTTP(string, string, int, time.Duration) {}
func (Noop) RateLimited(string) {}
