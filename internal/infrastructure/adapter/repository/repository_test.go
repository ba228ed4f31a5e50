package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

var accountColumns = []string{
	"id", "username", "email", "password_hash", "language",
	"points_balance", "lives_balance", "is_admin", "created_at", "updated_at",
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetForUpdate locks the row", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow("acc-1", "maria", "", "hash", "es", 120, 3, false, now, now))

		// Act
		account, err := repo.GetForUpdate(ctx, "acc-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(120), account.Points())
		assert.Equal(t, int64(3), account.Lives())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row maps to account not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(accountColumns))

		_, err := repo.GetByID(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Negative stored balance is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username = \$1`).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow("acc-1", "maria", "", "hash", "es", -1, 3, false, now, now))

		_, err := repo.GetByUsername(ctx, "maria")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Update writes balances", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		account := entity.NewAccount("acc-1", "maria", "", "hash", "es", now)
		require.NoError(t, account.SetBalances(40, 2))
		mock.ExpectExec(`UPDATE "accounts" SET .*"points_balance"=.* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, account)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update of a vanished row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		account := entity.NewAccount("ghost", "maria", "", "hash", "es", now)
		mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, account)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		account := entity.NewAccount("acc-2", "maria", "", "hash", "es", now)
		mock.ExpectExec(`INSERT INTO "accounts"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_accounts_username"})

		err := repo.Create(ctx, account)

		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Serialization failure maps to concurrent update", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "accounts"`).
			WillReturnError(&pgconn.PgError{Code: "40001"})

		_, err := repo.GetForUpdate(ctx, "acc-1")

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})

	t.Run("ExistsByUsername", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE username = \$1`).
			WithArgs("maria").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByUsername(ctx, "maria")

		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestAdViewRepository_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates totals", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdViewRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT COUNT\(\*\) AS total, COALESCE\(SUM\(ad_value\), 0\) AS total_value.* FROM "ad_views"`).
			WillReturnRows(sqlmock.NewRows([]string{"total", "total_value", "user_earnings", "platform_earnings"}).
				AddRow(3, 300, 60, 240))

		stats, err := repo.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.AdViewStats{Total: 3, TotalValue: 300, UserEarnings: 60, PlatformEarnings: 240}, stats)
	})

	t.Run("Connection failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdViewRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))

		_, err := repo.Stats(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestAdViewRepository_ListByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdViewRepository(db, logger.NewNoopLogger())
	mock.ExpectQuery(`SELECT \* FROM "ad_views" WHERE account_id = \$1 ORDER BY created_at DESC`).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "ad_value", "user_earned", "platform_earned", "created_at"}).
			AddRow("ad-2", "acc-1", 50, 10, 40, now.Add(time.Minute)).
			AddRow("ad-1", "acc-1", 10, 2, 8, now))

	records, err := repo.ListByAccount(context.Background(), "acc-1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ad-2", records[0].ID)
	assert.Equal(t, int64(10), records[0].UserEarned)
}

func TestGameSessionRepository_Find(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameSessionRepository(db, logger.NewNoopLogger())
	mock.ExpectQuery(`SELECT \* FROM "game_sessions" WHERE account_id = \$1 AND game_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "game_id", "plays_count", "last_played_at"}))

	_, err := repo.Find(context.Background(), "acc-1", "game-1")

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStoreTierRepository_List(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "category", "tier", "amount", "cost", "label", "is_active", "created_at"}

	t.Run("Filters by category", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStoreTierRepository(db, logger.NewNoopLogger())
		category := entity.TransactionTypeExtraLives
		mock.ExpectQuery(`SELECT \* FROM "store_tiers" WHERE is_active = \$1 AND category = \$2 ORDER BY category ASC,tier ASC`).
			WithArgs(true, "extra_lives").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("tier-1", "extra_lives", 1, 5, 100, "5 Lives", true, now))

		tiers, err := repo.List(ctx, &category)

		require.NoError(t, err)
		require.Len(t, tiers, 1)
		assert.Equal(t, entity.TransactionTypeExtraLives, tiers[0].Category)
	})

	t.Run("Duplicate tier", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStoreTierRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(`INSERT INTO "store_tiers"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_store_tiers_category_tier"})

		err := repo.Create(ctx, &entity.StoreTier{ID: "tier-2", Category: entity.TransactionTypeExtraLives, Tier: 1, CreatedAt: now})

		assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	})
}

func TestStoreTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetForUpdate locks the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStoreTransactionRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "store_transactions" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "type", "tier", "tier_amount", "cost", "status", "reference", "created_at"}).
				AddRow("txn-1", "acc-1", "point_purchase", 1, 1000, 1000, "pending", "TRX-1", now))

		txn, err := repo.GetForUpdate(ctx, "txn-1")

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusPending, txn.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Foreign key violation maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStoreTransactionRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(`INSERT INTO "store_transactions"`).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_store_transactions_account"})

		err := repo.Create(ctx, &entity.StoreTransaction{ID: "txn-1", AccountID: "ghost", CreatedAt: now})

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("UpdateStatus of a vanished row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStoreTransactionRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(`UPDATE "store_transactions" SET "status"=\$1 WHERE id = \$2`).
			WithArgs("completed", "txn-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, &entity.StoreTransaction{ID: "txn-1", Status: entity.TransactionStatusCompleted})

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestPromotionRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPromotionRepository(db, logger.NewNoopLogger())
	approvedAt := now
	mock.ExpectExec(`UPDATE "video_promotions" SET "approved_at"=\$1,"status"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), "approved", "promo-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), &entity.VideoPromotion{
		ID:         "promo-1",
		Status:     entity.PromotionStatusApproved,
		ApprovedAt: &approvedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "account_id", "from_admin", "message", "image_url", "is_read", "created_at"}

	t.Run("Returns the row with its owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("note-1", "acc-1", false, "hola", nil, false, now))

		notification, err := repo.GetByID(ctx, "note-1")

		require.NoError(t, err)
		assert.Equal(t, "acc-1", notification.AccountID)
		assert.False(t, notification.IsRead)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown notification", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())
		mock.ExpectQuery(`SELECT \* FROM "notifications"`).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
	})
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the updated row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1 WHERE id = \$2`).
			WithArgs(true, "note-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "from_admin", "message", "image_url", "is_read", "created_at"}).
				AddRow("note-1", "acc-1", true, "Receipt", nil, true, now))

		notification, err := repo.MarkRead(ctx, "note-1")

		require.NoError(t, err)
		assert.True(t, notification.IsRead)
		assert.Nil(t, notification.ImageURL)
	})

	t.Run("Unknown notification", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())
		mock.ExpectExec(`UPDATE "notifications"`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.MarkRead(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
	})
}
