package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/database"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "seed", "create-admin"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}

	cmd, _, err := rootCmd.Find([]string{"migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, "status", cmd.Name())
}

func TestCreateAdmin_Args(t *testing.T) {
	assert.Error(t, createAdminCmd.Args(createAdminCmd, nil))
	assert.Error(t, createAdminCmd.Args(createAdminCmd, []string{"a", "b"}))
	assert.NoError(t, createAdminCmd.Args(createAdminCmd, []string{"root"}))
	assert.NotNil(t, createAdminCmd.Flags().Lookup("password"))
}

func TestServe_Flags(t *testing.T) {
	migrate := serveCmd.Flags().Lookup("migrate")
	require.NotNil(t, migrate)
	assert.Equal(t, "true", migrate.DefValue)

	seed := serveCmd.Flags().Lookup("seed")
	require.NotNil(t, seed)
	assert.Equal(t, "true", seed.DefValue)
}

func TestNewLogger(t *testing.T) {
	cfg := &config.Config{
		Environment: config.Development,
		Logger:      config.LoggerConfig{Level: "debug", Format: "json"},
	}

	t.Run("Quiet", func(t *testing.T) {
		flagQuiet = true
		t.Cleanup(func() { flagQuiet = false })

		log, err := newLogger(cfg)

		require.NoError(t, err)
		assert.IsType(t, &logger.NoopLogger{}, log)
	})

	t.Run("Zap", func(t *testing.T) {
		log, err := newLogger(cfg)

		require.NoError(t, err)
		assert.IsType(t, &logger.ZapLogger{}, log)
	})
}

func TestRetryConfig(t *testing.T) {
	assert.Equal(t, 0, retryConfig(config.SettlementConfig{MaxRetries: 0}).MaxRetries)
	assert.Equal(t, 5, retryConfig(config.SettlementConfig{MaxRetries: 5}).MaxRetries)
	assert.Equal(t, database.DefaultRetryConfig(), retryConfig(config.SettlementConfig{MaxRetries: -1}))
}
