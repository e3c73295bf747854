// Package config provides centralized timeout constants for the application.
//
// # LINE API Constraints
//
// LINE expects the webhook to acknowledge with 200 OK quickly. Events are
// processed after the response is sent, and the reply token stays valid
// long enough for the in-memory lookups done here.
package config

import "time"

// HTTP server timeouts
const (
	// HTTPRead is the HTTP server read timeout. Chat and webhook payloads are small.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the HTTP server write timeout.
	HTTPWrite = 30 * time.Second

	// HTTPIdle is the HTTP server idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Webhook timeouts
const (
	// WebhookProcessing bounds handling and replying to a single LINE event.
	WebhookProcessing = 30 * time.Second

	// WebhookReply bounds the LINE reply API call.
	WebhookReply = 10 * time.Second
)

// Snapshot timeouts
const (
	// SnapshotLoad bounds one snapshot load from any source.
	SnapshotLoad = 2 * time.Minute

	// DefaultSnapshotRefreshInterval is how often the snapshot is reloaded.
	DefaultSnapshotRefreshInterval = 15 * time.Minute

	// DefaultSnapshotGracePeriod is how long /readyz waits for the first
	// load before reporting ready with an empty snapshot.
	DefaultSnapshotGracePeriod = time.Minute
)

// Database timeouts
const (
	// DatabaseBusyTimeout is the SQLite busy_timeout pragma value.
	DatabaseBusyTimeout = 30 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	DatabaseConnMaxLifetime = time.Hour
)

// Background job intervals
const (
	// RateLimiterCleanupInterval is how often inactive per-client limiters are removed.
	RateLimiterCleanupInterval = 5 * time.Minute

	// MetricsUpdateInterval is how often gauge metrics such as session counts are refreshed.
	MetricsUpdateInterval = 30 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the default timeout for graceful server shutdown.
	GracefulShutdown = 30 * time.Second
)
