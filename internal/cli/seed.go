package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagSeedSkipAdmin bool

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&flagSeedSkipAdmin, "skip-admin", false, "Do not create the bootstrap admin from admin.username/admin.password")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default store tiers, sample games and bootstrap admin",
	Long: `Load reference data through the regular use cases, so validation applies.
Tiers and games that already exist are left untouched, which makes the
command safe to run repeatedly.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	seeder := a.seeder()
	tiers, err := seeder.SeedStoreTiers(ctx)
	if err != nil {
		return fmt.Errorf("seed store tiers: %w", err)
	}
	games, err := seeder.SeedGames(ctx)
	if err != nil {
		return fmt.Errorf("seed games: %w", err)
	}
	if !flagSeedSkipAdmin {
		if err := seeder.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %d store tiers and %d games\n", tiers, games)
	return nil
}
