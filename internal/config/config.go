package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int `env:"PORT" validate:"min=0,max=65535"`
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `env:"DB_MAX_CONNS" validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Simulation hosting
	BalanceFile      string
	BalanceProfile   string        `env:"BALANCE_PROFILE" validate:"required"`
	TickInterval     time.Duration `env:"TICK_INTERVAL" validate:"gt=0"`
	TimeScale        float64       `env:"TIME_SCALE" validate:"gt=0"` // game seconds per wall second
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" validate:"min=1"`
	SessionTTL       time.Duration `env:"SESSION_TTL" validate:"gt=0"`
	WorkerCount      int           `env:"WORKER_COUNT" validate:"min=1"`
	WorkerQueueSize  int           `env:"WORKER_QUEUE_SIZE" validate:"min=1"`

	// Event system
	EventMaxRetries     int `env:"EVENT_MAX_RETRIES" validate:"min=0"`
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
	EventRetentionDays  int `env:"EVENT_RETENTION_DAYS" validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "whinetime"),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "whinetime"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		BalanceFile:      getEnv("BALANCE_FILE", ""),
		BalanceProfile:   getEnv("BALANCE_PROFILE", ProfileNormal),
		TickInterval:     getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		TimeScale:        getEnvAsFloat("TIME_SCALE", DefaultTimeScale),
		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		WorkerCount:      getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventRetentionDays:  getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if raw := getEnv("TRUSTED_PROXIES", ""); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default on
// absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat parses a float variable, falling back to the default on
// absence or parse failure
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string, falling back to the default
// on absence or parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
