package migration

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// AdvancedIndexManager holds the PostgreSQL specific DDL gorm tags cannot express
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

type constraint struct {
	table string
	name  string
	def   string
}

var constraints = []constraint{
	{"accounts", "chk_accounts_points_non_negative", "CHECK (points_balance >= 0)"},
	{"accounts", "chk_accounts_lives_non_negative", "CHECK (lives_balance >= 0)"},
	{"ad_views", "chk_ad_views_split", "CHECK (ad_value >= 0 AND user_earned >= 0 AND platform_earned >= 0 AND user_earned + platform_earned = ad_value)"},
	{"store_transactions", "chk_store_transactions_cost", "CHECK (cost >= 0)"},
	{"video_promotions", "chk_video_promotions_cost", "CHECK (cost >= 0)"},
	{"ad_views", "fk_ad_views_account", "FOREIGN KEY (account_id) REFERENCES accounts (id)"},
	{"game_sessions", "fk_game_sessions_account", "FOREIGN KEY (account_id) REFERENCES accounts (id)"},
	{"game_sessions", "fk_game_sessions_game", "FOREIGN KEY (game_id) REFERENCES games (id)"},
	{"store_transactions", "fk_store_transactions_account", "FOREIGN KEY (account_id) REFERENCES accounts (id)"},
	{"video_promotions", "fk_video_promotions_account", "FOREIGN KEY (account_id) REFERENCES accounts (id)"},
	{"notifications", "fk_notifications_account", "FOREIGN KEY (account_id) REFERENCES accounts (id)"},
}

// CreateConstraints adds the check constraints and foreign keys. Existing
// constraints are replaced so the step can be rerun.
func (m *AdvancedIndexManager) CreateConstraints(tx *gorm.DB) error {
	for _, c := range constraints {
		if err := tx.Exec(fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", c.table, c.name)).Error; err != nil {
			return err
		}
		if err := tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", c.table, c.name, c.def)).Error; err != nil {
			m.logger.Error("Failed to add constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}
	m.logger.Info("Constraints created", map[string]any{"count": len(constraints)})
	return nil
}

var advancedIndexes = []string{
	// admin review queue
	`CREATE INDEX IF NOT EXISTS idx_store_transactions_pending
		ON store_transactions (created_at DESC)
		WHERE status = 'pending'`,
	`CREATE INDEX IF NOT EXISTS idx_video_promotions_pending
		ON video_promotions (created_at DESC)
		WHERE status = 'pending'`,
	// per-account history, newest first
	`CREATE INDEX IF NOT EXISTS idx_store_transactions_account_created
		ON store_transactions (account_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_video_promotions_account_created
		ON video_promotions (account_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_account_created
		ON notifications (account_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_game_sessions_game
		ON game_sessions (game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_views_created_at_brin
		ON ad_views USING BRIN (created_at)
		WITH (pages_per_range = 32)`,
}

// CreateAdvancedIndexes creates partial, composite and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(tx *gorm.DB) error {
	for _, ddl := range advancedIndexes {
		if err := tx.Exec(ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{"error": err.Error()})
			return err
		}
	}
	m.logger.Info("Advanced PostgreSQL indexes created", map[string]any{"count": len(advancedIndexes)})
	return nil
}

// CreatePerformanceTweaks leaves room on account pages for HOT updates of the
// balance columns. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(tx *gorm.DB) error {
	if err := tx.Exec(`ALTER TABLE accounts SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{"error": err.Error()})
		return nil
	}
	if err := tx.Exec(`ALTER TABLE ad_views ALTER COLUMN account_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for ad_views.account_id", map[string]any{"error": err.Error()})
	}
	return nil
}
