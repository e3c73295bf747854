package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Verify all metric fields are initialized
	if m.ChatRequestsTotal == nil {
		t.Error("ChatRequestsTotal is nil")
	}
	if m.ChatDurationSeconds == nil {
		t.Error("ChatDurationSeconds is nil")
	}
	if m.ChatEmotionsTotal == nil {
		t.Error("ChatEmotionsTotal is nil")
	}
	if m.ChatPanicsTotal == nil {
		t.Error("ChatPanicsTotal is nil")
	}
	if m.SnapshotRefreshTotal == nil {
		t.Error("SnapshotRefreshTotal is nil")
	}
	if m.SnapshotRecords == nil {
		t.Error("SnapshotRecords is nil")
	}
	if m.WebhookRequestsTotal == nil {
		t.Error("WebhookRequestsTotal is nil")
	}
	if m.HTTPErrorsTotal == nil {
		t.Error("HTTPErrorsTotal is nil")
	}
	if m.RateLimiterDropped == nil {
		t.Error("RateLimiterDropped is nil")
	}
	if m.BroadcastMessagesTotal == nil {
		t.Error("BroadcastMessagesTotal is nil")
	}
	if m.SessionsActive == nil {
		t.Error("SessionsActive is nil")
	}
}

func TestRecordChat(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordChat("list_professors", "domain", "neutral", 0.001)
	m.RecordChat("list_professors", "domain", "happy", 0.002)
	m.RecordChat("joke", "conversational", "neutral", 0.0001)

	if got := testutil.ToFloat64(m.ChatRequestsTotal.WithLabelValues("list_professors", "domain")); got != 2 {
		t.Errorf("list_professors count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ChatEmotionsTotal.WithLabelValues("neutral")); got != 2 {
		t.Errorf("neutral count = %v, want 2", got)
	}
}

func TestRecordChatPanic(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordChatPanic()
	m.RecordChatPanic()

	if got := testutil.ToFloat64(m.ChatPanicsTotal); got != 2 {
		t.Errorf("panics = %v, want 2", got)
	}
}

func TestSnapshotMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordSnapshotRefresh("storage", "success", 0.05)
	m.RecordSnapshotRefresh("r2", "not_modified", 0.2)
	m.SetSnapshot(3, 5, 9, 13, 3)

	if got := testutil.ToFloat64(m.SnapshotVersion); got != 3 {
		t.Errorf("version = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.SnapshotRecords.WithLabelValues("schedules")); got != 13 {
		t.Errorf("schedules = %v, want 13", got)
	}
}

func TestRecordWebhook(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordWebhook("message", "success", 0.1)
	m.RecordWebhook("follow", "error", 0.05)
}

func TestRecordHTTPError(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordHTTPError("invalid_input", "chat")
	m.RecordHTTPError("rate_limit", "chat")
	m.RecordHTTPError("invalid_signature", "webhook")
}

func TestRateLimiterMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordRateLimiterWait("reply", 0.01)
	m.RecordRateLimiterDrop("chat")

	if got := testutil.ToFloat64(m.RateLimiterDropped.WithLabelValues("chat")); got != 1 {
		t.Errorf("dropped = %v, want 1", got)
	}
}

func TestMiscMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordSingleflightDedup("snapshot")
	m.RecordBroadcast("sent", "success")
	m.RecordBroadcast("received", "success")
	m.SetSessionsActive(4)

	if got := testutil.ToFloat64(m.SessionsActive); got != 4 {
		t.Errorf("sessions = %v, want 4", got)
	}
}
