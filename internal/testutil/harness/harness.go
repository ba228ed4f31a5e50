// Package harness wires use cases to the in-memory store and a real
// settlement executor for tests
package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/memstore"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/testclock"
	mockcore "github.com/gemasgo/gemasgo-ledger/mocks/port/core"
)

// Epoch is the time every harness clock starts at
var Epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Harness bundles the collaborators a use case needs
type Harness struct {
	Store    *memstore.Store
	Clock    *testclock.Clock
	IDs      *memstore.SequentialIDs
	Logger   *mockcore.MockLogger
	Metrics  *mockcore.MockMetrics
	Executor *settlement.Executor
}

// New builds a harness whose logger and metrics accept any call
func New(t *testing.T) *Harness {
	t.Helper()

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	metrics := mockcore.NewMockMetrics(t)
	metrics.EXPECT().RecordSettlement(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().AddPointsCredited(mock.Anything, mock.Anything).Maybe()

	h := &Harness{
		Store:   memstore.New(),
		Clock:   testclock.New(Epoch),
		IDs:     memstore.NewSequentialIDs("id"),
		Logger:  logger,
		Metrics: metrics,
	}
	h.Executor = settlement.NewExecutor(h.Store, logger, h.Clock, metrics, settlement.Options{})
	t.Cleanup(h.Executor.Shutdown)
	return h
}

// SeedAccount stores an account with the given balances
func (h *Harness) SeedAccount(t *testing.T, id string, points, lives int64) {
	t.Helper()
	account := entity.NewAccount(id, id, "", "hash", "", Epoch)
	require.NoError(t, account.SetBalances(points, lives))
	h.Store.Seed(account)
}

// Points returns the stored points balance of an account
func (h *Harness) Points(id string) int64 {
	return h.Store.Account(id).Points()
}

// Lives returns the stored lives balance of an account
func (h *Harness) Lives(id string) int64 {
	return h.Store.Account(id).Lives()
}
