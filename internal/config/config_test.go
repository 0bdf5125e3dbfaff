package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "whinetime", cfg.DBName)
		assert.Equal(t, ProfileNormal, cfg.BalanceProfile)
		assert.Empty(t, cfg.BalanceFile)
		assert.Equal(t, time.Second, cfg.TickInterval)
		assert.Equal(t, 60.0, cfg.TimeScale)
		assert.Equal(t, 1000, cfg.SessionCacheSize)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, DefaultEventMaxRetries, cfg.EventMaxRetries)
		assert.Equal(t, DefaultEventRetentionDays, cfg.EventRetentionDays)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("BALANCE_PROFILE", ProfileHard)
		t.Setenv("BALANCE_FILE", "configs/balance.yaml")
		t.Setenv("TICK_INTERVAL", "250ms")
		t.Setenv("TIME_SCALE", "120")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, ProfileHard, cfg.BalanceProfile)
		assert.Equal(t, "configs/balance.yaml", cfg.BalanceFile)
		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 120.0, cfg.TimeScale)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for non-positive TIME_SCALE", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("TIME_SCALE", "-5")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "TIME_SCALE")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

// TestGetDBConnString verifies database connection string generation
func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss",
		DBHost:     "testhost",
		DBPort:     "5433",
		DBName:     "testdb",
	}

	assert.Equal(t, "postgres://testuser:p@ss@testhost:5433/testdb?sslmode=disable", cfg.GetDBConnString())
}

// unsetForTest removes key for the duration of the test and restores it after
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"BALANCE_FILE", "BALANCE_PROFILE", "TICK_INTERVAL", "TIME_SCALE",
		"SESSION_CACHE_SIZE", "SESSION_TTL", "WORKER_COUNT", "WORKER_QUEUE_SIZE",
		"TRUSTED_PROXIES", "EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH", "EVENT_RETENTION_DAYS",
	}

	for _, key := range envVars {
		unsetForTest(t, key)
	}
}
