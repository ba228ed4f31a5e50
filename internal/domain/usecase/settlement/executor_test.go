package settlement

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/memstore"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/testclock"
	mockcore "github.com/gemasgo/gemasgo-ledger/mocks/port/core"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func anyMetrics(t *testing.T) *mockcore.MockMetrics {
	metrics := mockcore.NewMockMetrics(t)
	metrics.EXPECT().RecordSettlement(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return metrics
}

func seedAccount(store *memstore.Store, id string, points, lives int64) {
	account := entity.NewAccount(id, id, "", "hash", "", fixedTime)
	_ = account.SetBalances(points, lives)
	store.Seed(account)
}

func newExecutor(t *testing.T, store *memstore.Store, metrics coreport.Metrics, opts Options) *Executor {
	executor := NewExecutor(store, quietLogger(t), testclock.New(fixedTime), metrics, opts)
	t.Cleanup(executor.Shutdown)
	return executor
}

func credit(amount int64) Func {
	return func(ctx context.Context, account *entity.Account) error {
		return account.CreditPoints(amount)
	}
}

func TestExecutor_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits the mutated account", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 100, 5)
		metrics := mockcore.NewMockMetrics(t)
		metrics.EXPECT().RecordSettlement("test_credit", coreport.OutcomeSuccess, mock.Anything).Once()
		executor := newExecutor(t, store, metrics, Options{})

		// Act
		account, err := executor.Settle(ctx, "acc-1", "test_credit", credit(20))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(120), account.Points())
		assert.Equal(t, int64(120), store.Account("acc-1").Points())
	})

	t.Run("Rejected settlement changes nothing", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 100, 5)
		metrics := mockcore.NewMockMetrics(t)
		metrics.EXPECT().RecordSettlement("test_debit", coreport.OutcomeRejected, mock.Anything).Once()
		executor := newExecutor(t, store, metrics, Options{})

		// Act
		account, err := executor.Settle(ctx, "acc-1", "test_debit", func(ctx context.Context, account *entity.Account) error {
			if err := account.CreditLives(3); err != nil {
				return err
			}
			return account.DebitPoints(180)
		})

		// Assert
		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(100), store.Account("acc-1").Points())
		assert.Equal(t, int64(5), store.Account("acc-1").Lives())
	})

	t.Run("Unknown account", func(t *testing.T) {
		store := memstore.New()
		executor := newExecutor(t, store, anyMetrics(t), Options{})

		_, err := executor.Settle(ctx, "ghost", "test_credit", credit(1))

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Ledger writes roll back with the balance", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 100, 5)
		store.FailOn("Accounts.Update", errs.ErrDatabaseConnection)
		executor := newExecutor(t, store, anyMetrics(t), Options{})

		// Act
		_, err := executor.Settle(ctx, "acc-1", "test_ad_view", func(txCtx context.Context, account *entity.Account) error {
			record, err := entity.NewAdViewRecord("ad-1", account.ID, 100, fixedTime)
			if err != nil {
				return err
			}
			if err := store.GetAdViewRepository(txCtx).Create(txCtx, record); err != nil {
				return err
			}
			return account.CreditPoints(record.UserEarned)
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		adViews, _, _, _ := store.Counts()
		assert.Equal(t, 0, adViews)
		assert.Equal(t, int64(100), store.Account("acc-1").Points())
	})

	t.Run("Panic is reported as an internal error", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 100, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})

		// Act
		_, err := executor.Settle(ctx, "acc-1", "test_panic", func(context.Context, *entity.Account) error {
			panic("boom")
		})
		account, followUp := executor.Settle(ctx, "acc-1", "test_credit", credit(1))

		// Assert
		assert.ErrorIs(t, err, errs.ErrInternalServer)
		require.NoError(t, followUp)
		assert.Equal(t, int64(101), account.Points())
	})
}

func TestExecutor_Concurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("Concurrent credits on one account are never lost", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		const n = 200
		const each = int64(20)

		// Act
		var wg sync.WaitGroup
		errCh := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := executor.Settle(ctx, "acc-1", "test_credit", credit(each))
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		// Assert
		for err := range errCh {
			require.NoError(t, err)
		}
		assert.Equal(t, n*each, store.Account("acc-1").Points())
	})

	t.Run("Concurrent debits never overdraw", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 1000, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		const n = 50

		// Act
		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := executor.Settle(ctx, "acc-1", "test_debit", func(ctx context.Context, account *entity.Account) error {
					return account.DebitPoints(30)
				})
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, 33, succeeded)
		assert.Equal(t, int64(10), store.Account("acc-1").Points())
	})

	t.Run("Different accounts do not wait for each other", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		seedAccount(store, "acc-2", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		release := make(chan struct{})
		blocked := make(chan error, 1)

		// Act
		go func() {
			_, err := executor.Settle(ctx, "acc-1", "test_wait", func(ctx context.Context, account *entity.Account) error {
				select {
				case <-release:
					return account.CreditPoints(1)
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			blocked <- err
		}()

		timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_, err := executor.Settle(timeoutCtx, "acc-2", "test_credit", credit(5))
		close(release)

		// Assert
		require.NoError(t, err)
		require.NoError(t, <-blocked)
		assert.Equal(t, int64(5), store.Account("acc-2").Points())
		assert.Equal(t, int64(1), store.Account("acc-1").Points())
	})
}

func TestExecutor_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Canceled context is returned before enqueueing", func(t *testing.T) {
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := executor.Settle(canceled, "acc-1", "test_credit", credit(1))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int64(0), store.Account("acc-1").Points())
	})

	t.Run("Caller canceled mid-settlement sees the committed result", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		callerCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		started := make(chan struct{})
		proceed := make(chan struct{})

		// Act
		type outcome struct {
			account *entity.Account
			err     error
		}
		done := make(chan outcome, 1)
		go func() {
			account, err := executor.Settle(callerCtx, "acc-1", "test_credit", func(txCtx context.Context, account *entity.Account) error {
				close(started)
				<-proceed
				return account.CreditPoints(7)
			})
			done <- outcome{account, err}
		}()
		<-started
		cancel()
		close(proceed)
		res := <-done

		// Assert
		require.NoError(t, res.err)
		assert.Equal(t, int64(7), res.account.Points())
		assert.Equal(t, int64(7), store.Account("acc-1").Points())
	})

	t.Run("Caller canceled while queued is never applied", func(t *testing.T) {
		// Arrange
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})
		started := make(chan struct{})
		release := make(chan struct{})
		first := make(chan error, 1)
		go func() {
			_, err := executor.Settle(ctx, "acc-1", "test_hold", func(txCtx context.Context, account *entity.Account) error {
				close(started)
				<-release
				return account.CreditPoints(1)
			})
			first <- err
		}()
		<-started

		// Act
		queuedCtx, cancel := context.WithCancel(ctx)
		second := make(chan error, 1)
		go func() {
			_, err := executor.Settle(queuedCtx, "acc-1", "test_credit", credit(100))
			second <- err
		}()
		time.Sleep(20 * time.Millisecond)
		cancel()
		close(release)

		// Assert
		require.NoError(t, <-first)
		assert.ErrorIs(t, <-second, context.Canceled)
		assert.Equal(t, int64(1), store.Account("acc-1").Points())
	})

	t.Run("Idle workers are retired", func(t *testing.T) {
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{IdleTimeout: 10 * coreport.Millisecond})

		_, err := executor.Settle(ctx, "acc-1", "test_credit", credit(1))
		require.NoError(t, err)

		assert.Eventually(t, func() bool { return executor.ActiveQueues() == 0 }, time.Second, 5*time.Millisecond)

		// a retired account gets a fresh worker
		account, err := executor.Settle(ctx, "acc-1", "test_credit", credit(1))
		require.NoError(t, err)
		assert.Equal(t, int64(2), account.Points())
	})

	t.Run("Settlements after shutdown are refused", func(t *testing.T) {
		store := memstore.New()
		seedAccount(store, "acc-1", 0, 5)
		executor := newExecutor(t, store, anyMetrics(t), Options{})

		_, err := executor.Settle(ctx, "acc-1", "test_credit", credit(1))
		require.NoError(t, err)
		executor.Shutdown()

		_, err = executor.Settle(ctx, "acc-1", "test_credit", credit(1))

		assert.ErrorIs(t, err, ErrShuttingDown)
		assert.Equal(t, int64(1), store.Account("acc-1").Points())
	})
}
