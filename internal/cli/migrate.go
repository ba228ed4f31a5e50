package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied and target schema versions",
	RunE:  runMigrateStatus,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	manager := a.db.MigrationManager()
	if err := manager.MigrateAll(cmd.Context()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %s\n", manager.CurrentSchemaVersion())
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	manager := a.db.MigrationManager()
	current, err := manager.GetCurrentVersion(cmd.Context())
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current == "" {
		current = "none"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied: %s\nTarget:  %s\n", current, manager.CurrentSchemaVersion())
	return nil
}
