// Package config provides application configuration management.
// It loads settings from environment variables (optionally via a .env file)
// and provides defaults for the server, snapshot sources, and integrations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Snapshot source names accepted by FMP_SNAPSHOT_SOURCE.
const (
	SourceStorage  = "storage"
	SourcePostgres = "postgres"
	SourceFile     = "file"
	SourceR2       = "r2"
)

// Sources lists every supported snapshot source.
var Sources = []string{SourceStorage, SourcePostgres, SourceFile, SourceR2}

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	ServerName      string
	InstanceID      string

	// Data Configuration
	DataDir string // Data directory for the SQLite database

	Snapshot    SnapshotConfig
	R2          R2Config
	Redis       RedisConfig
	Session     SessionConfig
	Chat        ChatConfig
	LINE        LINEConfig
	Sentry      SentryConfig
	BetterStack BetterStackConfig

	// Metrics Authentication
	MetricsUsername string // Username for /metrics Basic Auth
	MetricsPassword string // Password for /metrics Basic Auth (empty = no auth)
}

// SnapshotConfig selects where directory data comes from and how often it is reloaded.
type SnapshotConfig struct {
	Source          string
	RefreshInterval time.Duration // 0 disables polling
	GracePeriod     time.Duration
	FilePath        string // JSON or YAML fixture, optionally .zst compressed
	PostgresDSN     string
}

// R2Config holds Cloudflare R2 credentials for the r2 snapshot source.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	SnapshotKey     string
}

// Configured reports whether every R2 credential is present.
func (c R2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

// RedisConfig enables cross-instance reload broadcasts when URL is set.
type RedisConfig struct {
	URL     string
	Channel string
}

// SessionConfig bounds in-memory chat history.
type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
	MaxTurns    int
}

// ChatConfig holds chat input limits and rate limits (token bucket).
type ChatConfig struct {
	RateBurst        float64 // Maximum burst tokens per client
	RateRefill       float64 // Tokens refilled per second per client
	ReplyRateRPS     float64 // Global LINE reply rate
	MaxMessageLength int     // In runes
}

// LINEConfig holds LINE Messaging API credentials. Both empty disables the webhook.
type LINEConfig struct {
	ChannelSecret string
	ChannelToken  string
}

// Enabled reports whether the LINE webhook should be mounted.
func (c LINEConfig) Enabled() bool {
	return c.ChannelSecret != "" && c.ChannelToken != ""
}

// SentryConfig holds error reporting settings.
type SentryConfig struct {
	DSN         string
	Token       string
	Host        string
	Environment string
	SampleRate  float64
}

// BetterStackConfig enables remote log shipping when Token is set.
type BetterStackConfig struct {
	Token    string
	Endpoint string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "3000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, GracefulShutdown),
		ServerName:      getEnv(EnvServerName, "findmyprof"),
		InstanceID:      getEnv(EnvInstanceID, defaultInstanceID()),

		DataDir: getEnv(EnvDataDir, getDefaultDataDir()),

		Snapshot: SnapshotConfig{
			Source:          strings.ToLower(getEnv(EnvSnapshotSource, SourceStorage)),
			RefreshInterval: getDurationEnv(EnvSnapshotRefreshInterval, DefaultSnapshotRefreshInterval),
			GracePeriod:     getDurationEnv(EnvSnapshotGracePeriod, DefaultSnapshotGracePeriod),
			FilePath:        getEnv(EnvSnapshotFile, ""),
			PostgresDSN:     getEnv(EnvPostgresDSN, ""),
		},

		R2: R2Config{
			AccountID:       getEnv(EnvR2AccountID, ""),
			AccessKeyID:     getEnv(EnvR2AccessKeyID, ""),
			SecretAccessKey: getEnv(EnvR2SecretAccessKey, ""),
			BucketName:      getEnv(EnvR2BucketName, ""),
			SnapshotKey:     getEnv(EnvR2SnapshotKey, "snapshots/directory.json.zst"),
		},

		Redis: RedisConfig{
			URL:     getEnv(EnvRedisURL, ""),
			Channel: getEnv(EnvRedisChannel, "findmyprof:reload"),
		},

		Session: SessionConfig{
			MaxSessions: getIntEnv(EnvSessionMax, 10000),
			TTL:         getDurationEnv(EnvSessionTTL, 30*time.Minute),
			MaxTurns:    getIntEnv(EnvSessionTurns, 20),
		},

		Chat: ChatConfig{
			RateBurst:        getFloatEnv(EnvChatRateBurst, 20.0),
			RateRefill:       getFloatEnv(EnvChatRateRefill, 1.0),
			ReplyRateRPS:     getFloatEnv(EnvReplyRateRPS, 80.0), // LINE API allows 100 RPS
			MaxMessageLength: getIntEnv(EnvMaxMessageLength, 1000),
		},

		LINE: LINEConfig{
			ChannelSecret: getEnv(EnvLineChannelSecret, ""),
			ChannelToken:  getEnv(EnvLineChannelAccessToken, ""),
		},

		Sentry: SentryConfig{
			DSN:         getEnv(EnvSentryDSN, ""),
			Token:       getEnv(EnvSentryToken, ""),
			Host:        getEnv(EnvSentryHost, ""),
			Environment: getEnv(EnvSentryEnvironment, "production"),
			SampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),
		},

		BetterStack: BetterStackConfig{
			Token:    getEnv(EnvBetterStackToken, ""),
			Endpoint: getEnv(EnvBetterStackEndpoint, ""),
		},

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvPort))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}

	switch c.Snapshot.Source {
	case SourceStorage:
		if c.DataDir == "" {
			errs = append(errs, fmt.Errorf("%s is required for the storage source", EnvDataDir))
		}
	case SourcePostgres:
		if c.Snapshot.PostgresDSN == "" {
			errs = append(errs, fmt.Errorf("%s is required for the postgres source", EnvPostgresDSN))
		}
	case SourceFile:
		if c.Snapshot.FilePath == "" {
			errs = append(errs, fmt.Errorf("%s is required for the file source", EnvSnapshotFile))
		}
	case SourceR2:
		if !c.R2.Configured() {
			errs = append(errs, errors.New("R2 account, access key, secret key and bucket are required for the r2 source"))
		}
		if c.R2.SnapshotKey == "" {
			errs = append(errs, fmt.Errorf("%s is required for the r2 source", EnvR2SnapshotKey))
		}
	default:
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", EnvSnapshotSource, strings.Join(Sources, ", "), c.Snapshot.Source))
	}
	if c.Snapshot.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvSnapshotRefreshInterval, c.Snapshot.RefreshInterval))
	}
	if c.Snapshot.GracePeriod <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSnapshotGracePeriod, c.Snapshot.GracePeriod))
	}

	if c.Session.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvSessionMax, c.Session.MaxSessions))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionTTL, c.Session.TTL))
	}
	if c.Session.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvSessionTurns, c.Session.MaxTurns))
	}

	if c.Chat.RateBurst <= 0 || c.Chat.RateRefill <= 0 {
		errs = append(errs, fmt.Errorf("%s and %s must be positive", EnvChatRateBurst, EnvChatRateRefill))
	}
	if c.Chat.ReplyRateRPS <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvReplyRateRPS, c.Chat.ReplyRateRPS))
	}
	if c.Chat.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvMaxMessageLength, c.Chat.MaxMessageLength))
	}

	if (c.LINE.ChannelSecret == "") != (c.LINE.ChannelToken == "") {
		errs = append(errs, fmt.Errorf("%s and %s must be set together", EnvLineChannelSecret, EnvLineChannelAccessToken))
	}

	if c.Sentry.Token != "" && c.Sentry.DSN == "" && c.Sentry.Host == "" {
		errs = append(errs, fmt.Errorf("%s is required when %s is set", EnvSentryHost, EnvSentryToken))
	}
	if c.Sentry.SampleRate < 0 || c.Sentry.SampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %v", EnvSentrySampleRate, c.Sentry.SampleRate))
	}

	if c.MetricsPassword != "" && c.MetricsUsername == "" {
		errs = append(errs, fmt.Errorf("%s is required when %s is set", EnvMetricsUsername, EnvMetricsPassword))
	}

	return errors.Join(errs...)
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

func defaultInstanceID() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "findmyprof.db")
}

// IsValidSource reports whether name is a supported snapshot source.
func IsValidSource(name string) bool {
	return slices.Contains(Sources, name)
}
