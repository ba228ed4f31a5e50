package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// DefaultJWTSecret ships in the development config and must not reach production
const DefaultJWTSecret = "change-me"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("GG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("settlement.queueSize", 100)
	v.SetDefault("settlement.lockTimeoutMs", 5000)
	v.SetDefault("settlement.idleTimeoutSeconds", 60)
	v.SetDefault("settlement.maxRetries", 3)

	v.SetDefault("auth.tokenTTLMinutes", 1440)
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rateLimit.adViewsPerMinute", 30)
	v.SetDefault("rateLimit.authPerMinute", 10)

	v.SetDefault("game.livesPerPlay", 1)
}

// getEnvironment reads GG_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("GG_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives explicit environment variables priority over file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"GG_DB_HOST":         "database.host",
		"GG_DB_PORT":         "database.port",
		"GG_DB_USERNAME":     "database.username",
		"GG_DB_PASSWORD":     "database.password",
		"GG_DB_NAME":         "database.database",
		"GG_DB_SSL_MODE":     "database.sslMode",
		"GG_SERVER_HOST":     "server.host",
		"GG_LOGGER_LEVEL":    "logger.level",
		"GG_AUTH_JWT_SECRET": "auth.jwtSecret",
		"GG_REDIS_ADDR":      "redis.addr",
		"GG_REDIS_PASSWORD":  "redis.password",
		"GG_ADMIN_USERNAME":  "admin.username",
		"GG_ADMIN_PASSWORD":  "admin.password",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if port := getEnvInt("GG_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("GG_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("GG_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if retryAttempts := getEnvInt("GG_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if lockTimeout := getEnvInt("GG_SETTLEMENT_LOCK_TIMEOUT_MS", 0); lockTimeout > 0 {
		v.Set("settlement.lockTimeoutMs", lockTimeout)
	}
	if maxRetries := getEnvInt("GG_SETTLEMENT_MAX_RETRIES", -1); maxRetries >= 0 {
		v.Set("settlement.maxRetries", maxRetries)
	}
	if redisDB := getEnvInt("GG_REDIS_DB", -1); redisDB >= 0 {
		v.Set("redis.db", redisDB)
	}
	if enabled := os.Getenv("GG_REDIS_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			v.Set("redis.enabled", parsed)
		}
	}
}

// getEnvInt reads an integer environment variable, falling back to defaultVal
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw numbers read from files into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}

// ValidateConfig reports every missing required setting in a single error
func ValidateConfig(config *Config) error {
	var missing []string
	required := map[string]string{
		"database.host":     config.Database.Host,
		"database.username": config.Database.Username,
		"database.database": config.Database.Database,
		"auth.jwtSecret":    config.Auth.JWTSecret,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if config.Redis.Enabled && config.Redis.Addr == "" {
		missing = append(missing, "redis.addr")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if config.Game.LivesPerPlay < 0 {
		return errors.New("game.livesPerPlay must not be negative")
	}
	if config.Settlement.QueueSize <= 0 {
		return errors.New("settlement.queueSize must be positive")
	}
	return nil
}

// Warnings lists settings that work but are unsafe for the current environment
func Warnings(config *Config) []string {
	if config.Environment != Production {
		return nil
	}
	var warnings []string
	if config.Database.SSLMode == "disable" {
		warnings = append(warnings, "database.sslMode is disabled in production")
	}
	if config.Auth.JWTSecret == DefaultJWTSecret || len(config.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret is weak; use at least 32 random bytes")
	}
	if config.Logger.Level == "debug" {
		warnings = append(warnings, "logger.level is debug in production")
	}
	return warnings
}
