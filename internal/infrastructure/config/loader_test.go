package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: db.internal
  username: gemasgo
  database: gemasgo
auth:
  jwtSecret: file-secret
settlement:
  lockTimeoutMs: 2500
`

func useConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	paths, dotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths, DotEnvPaths = []string{dir}, nil
	t.Cleanup(func() { ConfigPaths, DotEnvPaths = paths, dotEnv })
	t.Setenv("GG_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	t.Run("Reads the environment file and applies defaults", func(t *testing.T) {
		useConfigDir(t, Test, minimalYAML)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 2500*time.Millisecond, cfg.Settlement.LockTimeout())
		assert.Equal(t, time.Minute, cfg.Settlement.IdleTimeout())
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
		assert.Equal(t, int64(1), cfg.Game.LivesPerPlay)
	})

	t.Run("Environment variables win over the file", func(t *testing.T) {
		useConfigDir(t, Test, minimalYAML)
		t.Setenv("GG_DB_HOST", "override.internal")
		t.Setenv("GG_AUTH_JWT_SECRET", "env-secret")
		t.Setenv("GG_SERVER_PORT", "9090")
		t.Setenv("GG_REDIS_ENABLED", "true")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.True(t, cfg.Redis.Enabled)
	})

	t.Run("Missing file", func(t *testing.T) {
		useConfigDir(t, Test, minimalYAML)
		t.Setenv("GG_ENV", "staging")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "error reading config file")
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database:   DatabaseConfig{Host: "h", Username: "u", Database: "d"},
			Auth:       AuthConfig{JWTSecret: "s"},
			Settlement: SettlementConfig{QueueSize: 1},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("Lists every missing key", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Host = ""
		cfg.Auth.JWTSecret = " "

		err := ValidateConfig(cfg)

		assert.EqualError(t, err, "missing required configuration: auth.jwtSecret, database.host")
	})

	t.Run("Negative lives per play", func(t *testing.T) {
		cfg := valid()
		cfg.Game.LivesPerPlay = -1

		assert.Error(t, ValidateConfig(cfg))
	})
}

func TestWarnings(t *testing.T) {
	cfg := &Config{
		Environment: Production,
		Database:    DatabaseConfig{SSLMode: "disable"},
		Auth:        AuthConfig{JWTSecret: DefaultJWTSecret},
	}

	assert.Len(t, Warnings(cfg), 2)

	cfg.Environment = Development
	assert.Empty(t, Warnings(cfg))
}
