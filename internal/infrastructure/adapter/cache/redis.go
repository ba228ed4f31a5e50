package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

// NewRedisClient connects to redis and verifies the connection with a ping.
// A nil client with nil error means redis is disabled.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger core.Logger) (*redis.Client, error) {
	if !cfg.Enabled {
		logger.Info("Redis disabled, rate limiting is off", nil)
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	logger.Info("Redis connection established", map[string]any{"addr": cfg.Addr, "db": cfg.DB})
	return client, nil
}
