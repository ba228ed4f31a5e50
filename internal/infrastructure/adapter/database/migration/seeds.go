package migration

import (
	"context"
	"errors"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// TierCatalog is the part of the store use case the seeder needs
type TierCatalog interface {
	CreateTier(ctx context.Context, input entity.StoreTierInput) (*entity.StoreTier, error)
}

// GameCatalog is the part of the game use case the seeder needs
type GameCatalog interface {
	ListGames(ctx context.Context, includeInactive bool) ([]*entity.Game, error)
	CreateGame(ctx context.Context, input entity.GameInput) (*entity.Game, error)
}

// AdminBootstrapper creates the first admin account
type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, username, password string) (*entity.Account, bool, error)
}

// DefaultStoreTiers is the catalog a fresh installation starts with
var DefaultStoreTiers = []entity.StoreTierInput{
	{Category: entity.TransactionTypeExternalCurrencyRedemption, Tier: 1, Amount: 100, Cost: 500, Label: "Starter Pack"},
	{Category: entity.TransactionTypeExternalCurrencyRedemption, Tier: 2, Amount: 500, Cost: 2000, Label: "Popular Pack"},
	{Category: entity.TransactionTypeExternalCurrencyRedemption, Tier: 3, Amount: 1000, Cost: 3500, Label: "Premium Pack"},
	{Category: entity.TransactionTypeExtraLives, Tier: 1, Amount: 5, Cost: 100, Label: "5 Lives"},
	{Category: entity.TransactionTypeExtraLives, Tier: 2, Amount: 10, Cost: 180, Label: "10 Lives"},
	{Category: entity.TransactionTypeExtraLives, Tier: 3, Amount: 25, Cost: 400, Label: "25 Lives"},
	{Category: entity.TransactionTypeExtraLives, Tier: 4, Amount: 50, Cost: 750, Label: "50 Lives"},
	{Category: entity.TransactionTypePointPurchase, Tier: 1, Amount: 1000, Cost: 1000, Label: "$10 USDT"},
	{Category: entity.TransactionTypePointPurchase, Tier: 2, Amount: 5000, Cost: 4500, Label: "$45 USDT"},
	{Category: entity.TransactionTypePointPurchase, Tier: 3, Amount: 10000, Cost: 8500, Label: "$85 USDT"},
}

// DefaultGames is the sample catalog
var DefaultGames = []entity.GameInput{
	{
		Title:        "Gem Rush",
		Description:  "Match three gems before the timer runs out.",
		ThumbnailURL: "https://cdn.gemasgo.com/games/gem-rush.png",
		GameURL:      "https://play.gemasgo.com/gem-rush",
	},
	{
		Title:        "Sky Runner",
		Description:  "Endless runner across floating islands.",
		ThumbnailURL: "https://cdn.gemasgo.com/games/sky-runner.png",
		GameURL:      "https://play.gemasgo.com/sky-runner",
	},
	{
		Title:       "Trivia Latina",
		Description: "Daily trivia in Spanish and English.",
		GameURL:     "https://play.gemasgo.com/trivia-latina",
	},
}

// Seeder loads reference data through the use cases so validation applies
type Seeder struct {
	tiers  TierCatalog
	games  GameCatalog
	admins AdminBootstrapper
	logger coreport.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(tiers TierCatalog, games GameCatalog, admins AdminBootstrapper, logger coreport.Logger) *Seeder {
	return &Seeder{tiers: tiers, games: games, admins: admins, logger: logger}
}

// SeedStoreTiers creates the default tiers, skipping those already present
func (s *Seeder) SeedStoreTiers(ctx context.Context) (int, error) {
	created := 0
	for _, input := range DefaultStoreTiers {
		if _, err := s.tiers.CreateTier(ctx, input); err != nil {
			if errors.Is(err, errs.ErrDuplicateKey) {
				continue
			}
			return created, err
		}
		created++
	}
	s.logger.Info("Store tiers seeded", map[string]any{"created": created})
	return created, nil
}

// SeedGames creates the sample games whose titles are not in the catalog yet
func (s *Seeder) SeedGames(ctx context.Context) (int, error) {
	existing, err := s.games.ListGames(ctx, true)
	if err != nil {
		return 0, err
	}
	titles := make(map[string]bool, len(existing))
	for _, g := range existing {
		titles[g.Title] = true
	}

	created := 0
	for _, input := range DefaultGames {
		if titles[input.Title] {
			continue
		}
		if _, err := s.games.CreateGame(ctx, input); err != nil {
			return created, err
		}
		created++
	}
	s.logger.Info("Games seeded", map[string]any{"created": created})
	return created, nil
}

// SeedAdmin creates the bootstrap admin. An empty username skips the step.
func (s *Seeder) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	account, created, err := s.admins.EnsureAdmin(ctx, username, password)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("Bootstrap admin created", map[string]any{
			"accountId": account.ID,
			"username":  account.Username,
		})
	}
	return nil
}

// SeedAll runs every seed step
func (s *Seeder) SeedAll(ctx context.Context, adminUsername, adminPassword string) error {
	if _, err := s.SeedStoreTiers(ctx); err != nil {
		return err
	}
	if _, err := s.SeedGames(ctx); err != nil {
		return err
	}
	return s.SeedAdmin(ctx, adminUsername, adminPassword)
}
