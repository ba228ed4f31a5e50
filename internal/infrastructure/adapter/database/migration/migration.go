package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// Step is one schema version. Run executes inside its own transaction.
type Step struct {
	Version string
	Details string
	Run     func(tx *gorm.DB) error
}

// MigrationManager applies the schema steps not yet recorded in migration_versions
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []Step
}

// NewMigrationManager creates a migration manager with the built-in steps
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	indexes := NewAdvancedIndexManager(logger)
	m.steps = []Step{
		{Version: "1.0.0", Details: "Base schema", Run: autoMigrateModels},
		{Version: "1.1.0", Details: "Foreign keys and balance checks", Run: indexes.CreateConstraints},
		{Version: "1.2.0", Details: "Review queue and history indexes", Run: indexes.CreateAdvancedIndexes},
		{Version: "1.2.1", Details: "Storage tuning", Run: indexes.CreatePerformanceTweaks},
	}
	return m
}

// CurrentSchemaVersion is the version of the last step
func (m *MigrationManager) CurrentSchemaVersion() string {
	return m.steps[len(m.steps)-1].Version
}

// MigrateAll applies every pending step in order
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"targetVersion": m.CurrentSchemaVersion(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("read applied versions: %w", err)
	}

	ran := 0
	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version": step.Version,
			"details": step.Details,
		})
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Run(tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   step.Version,
				Details:   step.Details,
				AppliedAt: m.timeProvider.Now(),
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", step.Version, err)
		}
		ran++
	}

	if ran == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": m.CurrentSchemaVersion(),
		})
		return nil
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": m.CurrentSchemaVersion(),
		"applied": ran,
	})
	return nil
}

// GetCurrentVersion returns the latest applied version or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var versions []model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at DESC").Limit(1).Find(&versions).Error
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", nil
	}
	return versions[0].Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func autoMigrateModels(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.Account{},
		&model.AdView{},
		&model.Game{},
		&model.GameSession{},
		&model.StoreTier{},
		&model.StoreTransaction{},
		&model.VideoPromotion{},
		&model.Notification{},
	)
}
