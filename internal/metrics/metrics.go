// Package metrics provides Prometheus metrics for monitoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec
	ChatEmotionsTotal   *prometheus.CounterVec
	ChatPanicsTotal     prometheus.Counter

	// Snapshot metrics
	SnapshotRefreshTotal    *prometheus.CounterVec
	SnapshotRefreshDuration *prometheus.HistogramVec
	SnapshotRecords         *prometheus.GaugeVec
	SnapshotVersion         prometheus.Gauge

	// Webhook metrics
	WebhookDurationSeconds *prometheus.HistogramVec
	WebhookRequestsTotal   *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterWaitDuration *prometheus.HistogramVec
	RateLimiterDropped      *prometheus.CounterVec

	// Singleflight metrics
	SingleflightDedupTotal *prometheus.CounterVec

	// Broadcast metrics
	BroadcastMessagesTotal *prometheus.CounterVec

	// Session metrics
	SessionsActive prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Chat metrics
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_chat_requests_total",
				Help: "Total number of chat messages by resolved intent and path",
			},
			[]string{"intent", "path"}, // path: conversational, domain, error
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "findmyprof_chat_duration_seconds",
				Help:    "Chat message handling duration in seconds by path",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // In-memory lookups
			},
			[]string{"path"},
		),

		ChatEmotionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_chat_emotions_total",
				Help: "Total number of chat messages by detected emotion",
			},
			[]string{"emotion"},
		),

		ChatPanicsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "findmyprof_chat_panics_total",
				Help: "Total number of recovered panics while generating a reply",
			},
		),

		// Snapshot metrics
		SnapshotRefreshTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_snapshot_refresh_total",
				Help: "Total number of snapshot refresh attempts by source and status",
			},
			[]string{"source", "status"}, // status: success, error, unchanged
		),

		SnapshotRefreshDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "findmyprof_snapshot_refresh_duration_seconds",
				Help:    "Snapshot load duration in seconds by source",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"source"},
		),

		SnapshotRecords: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "findmyprof_snapshot_records",
				Help: "Number of records in the current snapshot by table",
			},
			[]string{"table"}, // table: professors, subjects, schedules, attachments
		),

		SnapshotVersion: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "findmyprof_snapshot_version",
				Help: "Generation of the snapshot currently served",
			},
		),

		// Webhook metrics
		WebhookDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "findmyprof_webhook_duration_seconds",
				Help:    "Webhook processing duration in seconds by event type",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5}, // Faster buckets for webhook
			},
			[]string{"event_type"}, // event_type: message, follow
		),

		WebhookRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_webhook_requests_total",
				Help: "Total number of webhook requests by event type and status",
			},
			[]string{"event_type", "status"}, // status: success, error
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: invalid_input, rate_limit, invalid_signature, etc.
		),

		// Rate limiter metrics
		RateLimiterWaitDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "findmyprof_rate_limiter_wait_duration_seconds",
				Help:    "Time spent waiting for rate limiter token by limiter type",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5}, // 1ms to 5s
			},
			[]string{"limiter_type"}, // limiter_type: chat, reply
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),

		// Singleflight metrics
		SingleflightDedupTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_singleflight_dedup_total",
				Help: "Total number of deduplicated requests (requests that waited instead of executing)",
			},
			[]string{"module"}, // module: snapshot
		),

		// Broadcast metrics
		BroadcastMessagesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_broadcast_messages_total",
				Help: "Total number of reload broadcasts by direction and status",
			},
			[]string{"direction", "status"}, // direction: sent, received
		),

		// Session metrics
		SessionsActive: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "findmyprof_sessions_active",
				Help: "Number of chat sessions currently kept in memory",
			},
		),
	}

	return m
}

// RecordChat records one handled chat message
func (m *Metrics) RecordChat(intent, path, emotion string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(intent, path).Inc()
	m.ChatDurationSeconds.WithLabelValues(path).Observe(duration)
	m.ChatEmotionsTotal.WithLabelValues(emotion).Inc()
}

// RecordChatPanic records a panic recovered while generating a reply
func (m *Metrics) RecordChatPanic() {
	m.ChatPanicsTotal.Inc()
}

// RecordSnapshotRefresh records a snapshot refresh attempt with status
func (m *Metrics) RecordSnapshotRefresh(source, status string, duration float64) {
	m.SnapshotRefreshTotal.WithLabelValues(source, status).Inc()
	m.SnapshotRefreshDuration.WithLabelValues(source).Observe(duration)
}

// SetSnapshot publishes the record counts and generation of the served snapshot
func (m *Metrics) SetSnapshot(version uint64, professors, subjects, schedules, attachments int) {
	m.SnapshotVersion.Set(float64(version))
	m.SnapshotRecords.WithLabelValues("professors").Set(float64(professors))
	m.SnapshotRecords.WithLabelValues("subjects").Set(float64(subjects))
	m.SnapshotRecords.WithLabelValues("schedules").Set(float64(schedules))
	m.SnapshotRecords.WithLabelValues("attachments").Set(float64(attachments))
}

// RecordWebhook records a webhook request
func (m *Metrics) RecordWebhook(eventType, status string, duration float64) {
	m.WebhookRequestsTotal.WithLabelValues(eventType, status).Inc()
	m.WebhookDurationSeconds.WithLabelValues(eventType).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// RecordRateLimiterWait records time spent waiting for rate limiter
func (m *Metrics) RecordRateLimiterWait(limiterType string, duration float64) {
	m.RateLimiterWaitDuration.WithLabelValues(limiterType).Observe(duration)
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// RecordSingleflightDedup records a deduplicated request
func (m *Metrics) RecordSingleflightDedup(module string) {
	m.SingleflightDedupTotal.WithLabelValues(module).Inc()
}

// RecordBroadcast records a published or received reload broadcast
func (m *Metrics) RecordBroadcast(direction, status string) {
	m.BroadcastMessagesTotal.WithLabelValues(direction, status).Inc()
}

// SetSessionsActive publishes the number of live chat sessions
func (m *Metrics) SetSessionsActive(n int) {
	m.SessionsActive.Set(float64(n))
}
