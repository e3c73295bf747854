// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "FMP_PORT"
	EnvLogLevel        = "FMP_LOG_LEVEL"
	EnvShutdownTimeout = "FMP_SHUTDOWN_TIMEOUT"
	EnvServerName      = "FMP_SERVER_NAME"
	EnvInstanceID      = "FMP_INSTANCE_ID"

	// Data
	EnvDataDir = "FMP_DATA_DIR"

	// Snapshot
	EnvSnapshotSource          = "FMP_SNAPSHOT_SOURCE"
	EnvSnapshotRefreshInterval = "FMP_SNAPSHOT_REFRESH_INTERVAL"
	EnvSnapshotGracePeriod     = "FMP_SNAPSHOT_GRACE_PERIOD"
	EnvSnapshotFile            = "FMP_SNAPSHOT_FILE"
	EnvPostgresDSN             = "FMP_POSTGRES_DSN"

	// R2 Snapshot Source
	EnvR2AccountID       = "FMP_R2_ACCOUNT_ID"
	EnvR2AccessKeyID     = "FMP_R2_ACCESS_KEY_ID"
	EnvR2SecretAccessKey = "FMP_R2_SECRET_ACCESS_KEY"
	EnvR2BucketName      = "FMP_R2_BUCKET_NAME"
	EnvR2SnapshotKey     = "FMP_R2_SNAPSHOT_KEY"

	// Reload Broadcast
	EnvRedisURL     = "FMP_REDIS_URL"
	EnvRedisChannel = "FMP_REDIS_CHANNEL"

	// Sessions
	EnvSessionMax   = "FMP_SESSION_MAX"
	EnvSessionTTL   = "FMP_SESSION_TTL"
	EnvSessionTurns = "FMP_SESSION_TURNS"

	// Chat
	EnvChatRateBurst    = "FMP_CHAT_RATE_BURST"
	EnvChatRateRefill   = "FMP_CHAT_RATE_REFILL"
	EnvReplyRateRPS     = "FMP_REPLY_RATE_RPS"
	EnvMaxMessageLength = "FMP_MAX_MESSAGE_LENGTH"

	// LINE Feature
	EnvLineChannelAccessToken = "FMP_LINE_CHANNEL_ACCESS_TOKEN"
	EnvLineChannelSecret      = "FMP_LINE_CHANNEL_SECRET"

	// Sentry Feature
	EnvSentryDSN         = "FMP_SENTRY_DSN"
	EnvSentryToken       = "FMP_SENTRY_TOKEN"
	EnvSentryHost        = "FMP_SENTRY_HOST"
	EnvSentryEnvironment = "FMP_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "FMP_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "FMP_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "FMP_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "FMP_METRICS_USERNAME"
	EnvMetricsPassword = "FMP_METRICS_PASSWORD"
)
