package usecase

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// AdViewUseCase defines the Ad-Settlement Service
type AdViewUseCase interface {
	// RecordAdView splits adValue and credits the user share to the account
	//
	// Possible errors:
	// - ErrAccountNotFound
	// - ErrValidation: If adValue is negative
	RecordAdView(ctx context.Context, accountID string, adValue int64) (*entity.AdViewRecord, error)
	ListForAccount(ctx context.Context, accountID string) ([]*entity.AdViewRecord, error)
	Stats(ctx context.Context) (*entity.AdViewStats, error)
}

// GameUseCase defines the game catalog and play counter operations
type GameUseCase interface {
	ListGames(ctx context.Context, includeInactive bool) ([]*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	CreateGame(ctx context.Context, input entity.GameInput) (*entity.Game, error)
	UpdateGame(ctx context.Context, id string, patch entity.GamePatch) (*entity.Game, error)

	// Play records a play for the pair, consuming lives when configured
	//
	// Possible errors:
	// - ErrAccountNotFound, ErrGameNotFound
	// - ErrGameInactive
	// - InsufficientFundsError: If the account is out of lives
	Play(ctx context.Context, accountID, gameID string) (*entity.GameSession, error)
}

// StoreUseCase defines the Store-Purchase Service and its tier catalog
type StoreUseCase interface {
	// Purchase settles one purchase variant for the account
	//
	// Possible errors:
	// - ErrAccountNotFound
	// - ErrValidation
	// - InsufficientFundsError: If points do not cover a point-paid purchase
	Purchase(ctx context.Context, accountID string, purchase entity.Purchase) (*entity.StoreTransaction, error)
	GetTransaction(ctx context.Context, id string) (*entity.StoreTransaction, error)
	ListForAccount(ctx context.Context, accountID string) ([]*entity.StoreTransaction, error)
	ListPending(ctx context.Context) ([]*entity.StoreTransaction, error)

	// UpdateStatus is the only path from pending to completed or cancelled
	UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) (*entity.StoreTransaction, error)

	ListTiers(ctx context.Context, category *entity.TransactionType) ([]*entity.StoreTier, error)
	CreateTier(ctx context.Context, input entity.StoreTierInput) (*entity.StoreTier, error)
	UpdateTier(ctx context.Context, id string, patch entity.StoreTierPatch) (*entity.StoreTier, error)
}

// PromotionUseCase defines the Promotion Service
type PromotionUseCase interface {
	// Quote prices a promotion without submitting it
	Quote(goalType entity.GoalType, goalAmount int64, durationDays int) (int64, error)

	// Submit charges the promotion cost and records it as pending
	Submit(ctx context.Context, accountID string, req entity.PromotionRequest) (*entity.VideoPromotion, error)
	ListForAccount(ctx context.Context, accountID string) ([]*entity.VideoPromotion, error)
	ListByStatus(ctx context.Context, status entity.PromotionStatus) ([]*entity.VideoPromotion, error)
	UpdateStatus(ctx context.Context, id string, status entity.PromotionStatus) (*entity.VideoPromotion, error)
}

// NotificationUseCase defines the Notification/Receipt Service
type NotificationUseCase interface {
	Send(ctx context.Context, accountID string, req entity.NotificationRequest) (*entity.Notification, error)
	MarkRead(ctx context.Context, id string) (*entity.Notification, error)
	GetNotification(ctx context.Context, id string) (*entity.Notification, error)
	ListForAccount(ctx context.Context, accountID string) ([]*entity.Notification, error)
}
