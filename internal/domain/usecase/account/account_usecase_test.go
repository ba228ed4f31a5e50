package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/memstore"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/testclock"
	mockcore "github.com/gemasgo/gemasgo-ledger/mocks/port/core"
	mockpersistence "github.com/gemasgo/gemasgo-ledger/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *mockpersistence.MockUnitOfWork
	accounts *mockpersistence.MockAccountRepository
	hasher   *mockcore.MockPasswordHasher
	tokens   *mockcore.MockTokenIssuer
	ids      *mockcore.MockIDGenerator
	clock    *mockcore.MockTimeProvider
	logger   *mockcore.MockLogger
	useCase  *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      mockpersistence.NewMockUnitOfWork(t),
		accounts: mockpersistence.NewMockAccountRepository(t),
		hasher:   mockcore.NewMockPasswordHasher(t),
		tokens:   mockcore.NewMockTokenIssuer(t),
		ids:      mockcore.NewMockIDGenerator(t),
		clock:    mockcore.NewMockTimeProvider(t),
		logger:   mockcore.NewMockLogger(t),
	}
	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.useCase = NewUseCase(f.uow, nil, f.hasher, f.tokens, f.ids, f.clock, f.logger)
	return f
}

func TestUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates account with defaults", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
		f.ids.EXPECT().NewID().Return("acc-1")
		f.clock.EXPECT().Now().Return(fixedTime)
		f.accounts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
		f.logger.EXPECT().Info("Account registered", mock.Anything).Return()

		// Act
		account, err := f.useCase.Register(ctx, entity.RegistrationRequest{
			Username: "  lucia ",
			Password: "secret1",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID)
		assert.Equal(t, "lucia", account.Username)
		assert.Equal(t, "bcrypt-hash", account.PasswordHash)
		assert.Equal(t, entity.DefaultLanguage, account.Language)
		assert.Equal(t, int64(0), account.Points())
		assert.Equal(t, entity.DefaultLives, account.Lives())
		assert.False(t, account.IsAdmin)
		assert.Equal(t, fixedTime, account.CreatedAt)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
		f.ids.EXPECT().NewID().Return("acc-2")
		f.clock.EXPECT().Now().Return(fixedTime)
		f.accounts.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateUsername)

		// Act
		account, err := f.useCase.Register(ctx, entity.RegistrationRequest{Username: "lucia", Password: "secret1"})

		// Assert
		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrDuplicateKey)
		assert.Equal(t, 4003, errs.ErrorCode(err))
	})

	t.Run("Invalid payload never reaches the repository", func(t *testing.T) {
		f := newFixture(t)

		account, err := f.useCase.Register(ctx, entity.RegistrationRequest{Username: "lu", Password: "1"})

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrValidation)
		f.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Hashing failure is internal", func(t *testing.T) {
		f := newFixture(t)
		f.hasher.EXPECT().Hash("secret1").Return("", errors.New("cost out of range"))
		f.logger.EXPECT().Error("Failed to hash password", mock.Anything).Return()

		_, err := f.useCase.Register(ctx, entity.RegistrationRequest{Username: "lucia", Password: "secret1"})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	stored := entity.NewAccount("acc-1", "lucia", "", "bcrypt-hash", "es", fixedTime)

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		expiresAt := fixedTime.Add(time.Hour)
		f.accounts.EXPECT().GetByUsername(ctx, "lucia").Return(stored, nil)
		f.hasher.EXPECT().Compare("bcrypt-hash", "secret1").Return(nil)
		f.tokens.EXPECT().Issue("acc-1").Return("jwt-token", expiresAt, nil)

		// Act
		result, err := f.useCase.Authenticate(ctx, "lucia", "secret1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		assert.Equal(t, stored, result.Account)
	})

	t.Run("Unknown username", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().GetByUsername(ctx, "ghost").Return(nil, errs.ErrAccountNotFound)

		_, err := f.useCase.Authenticate(ctx, "ghost", "secret1")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().GetByUsername(ctx, "lucia").Return(stored, nil)
		f.hasher.EXPECT().Compare("bcrypt-hash", "nope").Return(errors.New("mismatch"))
		f.logger.EXPECT().Warn("Rejected login", mock.Anything).Return()

		_, err := f.useCase.Authenticate(ctx, "lucia", "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Equal(t, 401, errs.HTTPStatus(err))
	})
}

func TestUseCase_ResolveCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		f := newFixture(t)
		admin := entity.NewAccount("acc-9", "root", "", "hash", "", fixedTime)
		admin.IsAdmin = true
		f.tokens.EXPECT().Verify("jwt-token").Return(&coreport.TokenClaims{AccountID: "acc-9"}, nil)
		f.accounts.EXPECT().GetByID(ctx, "acc-9").Return(admin, nil)

		caller, err := f.useCase.ResolveCaller(ctx, "jwt-token")

		require.NoError(t, err)
		assert.Equal(t, &usecase.Caller{AccountID: "acc-9", IsAdmin: true}, caller)
	})

	t.Run("Invalid token", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Verify("garbage").Return(nil, errors.New("signature is invalid"))

		_, err := f.useCase.ResolveCaller(ctx, "garbage")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Token for a deleted account", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Verify("jwt-token").Return(&coreport.TokenClaims{AccountID: "gone"}, nil)
		f.accounts.EXPECT().GetByID(ctx, "gone").Return(nil, errs.ErrAccountNotFound)

		_, err := f.useCase.ResolveCaller(ctx, "jwt-token")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestUseCase_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	newStoreUseCase := func(t *testing.T) (*UseCase, *memstore.Store) {
		store := memstore.New()
		account := entity.NewAccount("acc-1", "lucia", "old@example.com", "hash", "", fixedTime)
		require.NoError(t, account.SetBalances(100, 5))
		store.Seed(account)

		logger := mockcore.NewMockLogger(t)
		logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
		metrics := mockcore.NewMockMetrics(t)
		metrics.EXPECT().RecordSettlement(mock.Anything, mock.Anything, mock.Anything).Maybe()

		clock := testclock.New(fixedTime)
		executor := settlement.NewExecutor(store, logger, clock, metrics, settlement.Options{})
		t.Cleanup(executor.Shutdown)
		return NewUseCase(store, executor, nil, nil, nil, clock, logger), store
	}

	email := "new@example.com"
	points := int64(900)
	admin := true

	t.Run("Owner edits profile", func(t *testing.T) {
		useCase, store := newStoreUseCase(t)

		account, err := useCase.UpdateAccount(ctx, usecase.Caller{AccountID: "acc-1"}, "acc-1", entity.AccountPatch{Email: &email})

		require.NoError(t, err)
		assert.Equal(t, email, account.Email)
		assert.Equal(t, email, store.Account("acc-1").Email)
		assert.Equal(t, int64(100), store.Account("acc-1").Points())
	})

	t.Run("Owner cannot set balances", func(t *testing.T) {
		useCase, store := newStoreUseCase(t)

		_, err := useCase.UpdateAccount(ctx, usecase.Caller{AccountID: "acc-1"}, "acc-1", entity.AccountPatch{PointsBalance: &points})

		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, int64(100), store.Account("acc-1").Points())
	})

	t.Run("Other accounts are off limits", func(t *testing.T) {
		useCase, _ := newStoreUseCase(t)

		_, err := useCase.UpdateAccount(ctx, usecase.Caller{AccountID: "acc-2"}, "acc-1", entity.AccountPatch{Email: &email})

		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("Admin manages balances and roles", func(t *testing.T) {
		useCase, store := newStoreUseCase(t)
		caller := usecase.Caller{AccountID: "admin", IsAdmin: true}

		account, err := useCase.UpdateAccount(ctx, caller, "acc-1", entity.AccountPatch{PointsBalance: &points, IsAdmin: &admin})

		require.NoError(t, err)
		assert.Equal(t, points, account.Points())
		assert.True(t, store.Account("acc-1").IsAdmin)
	})

	t.Run("Negative balance is a validation error", func(t *testing.T) {
		useCase, store := newStoreUseCase(t)
		negative := int64(-1)

		_, err := useCase.UpdateAccount(ctx, usecase.Caller{AccountID: "admin", IsAdmin: true}, "acc-1", entity.AccountPatch{LivesBalance: &negative})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, int64(5), store.Account("acc-1").Lives())
	})

	t.Run("Unknown account", func(t *testing.T) {
		useCase, _ := newStoreUseCase(t)

		_, err := useCase.UpdateAccount(ctx, usecase.Caller{AccountID: "admin", IsAdmin: true}, "ghost", entity.AccountPatch{Email: &email})

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
