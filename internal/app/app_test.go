package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
)

// testConfig returns a configuration backed by a JSON fixture of the sample
// directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	fixture := filepath.Join(dir, "directory.json")
	data, err := json.Marshal(directory.Sample())
	if err != nil {
		t.Fatalf("marshal sample: %v", err)
	}
	if err := os.WriteFile(fixture, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return &config.Config{
		Port:            "0",
		LogLevel:        "error",
		ShutdownTimeout: 5 * time.Second,
		ServerName:      "findmyprof-test",
		InstanceID:      "test-1",
		DataDir:         dir,
		Snapshot: config.SnapshotConfig{
			Source:      config.SourceFile,
			GracePeriod: time.Hour,
			FilePath:    fixture,
		},
		Session: config.SessionConfig{MaxSessions: 100, TTL: time.Minute, MaxTurns: 5},
		Chat: config.ChatConfig{
			RateBurst:        100,
			RateRefill:       100,
			ReplyRateRPS:     80,
			MaxMessageLength: 1000,
		},
		MetricsUsername: "prometheus",
		MetricsPassword: "secret",
	}
}

// setupTestApp initializes an Application without starting background jobs.
// Initialize changes process-wide defaults, so these tests do not run in
// parallel.
func setupTestApp(t *testing.T, mutate func(*config.Config)) *Application {
	t.Helper()

	cfg := testConfig(t)
	if mutate != nil {
		mutate(cfg)
	}
	a, err := Initialize(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(a.closeResources)
	return a
}

func serve(a *Application, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestInitializeUnknownSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshot.Source = "ftp"

	if _, err := Initialize(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown snapshot source")
	}
}

func TestLivenessCheck(t *testing.T) {
	a := setupTestApp(t, nil)

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		w := serve(a, httptest.NewRequest(method, "/livez", nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s /livez: expected 200, got %d", method, w.Code)
		}
	}

	body := decode(t, serve(a, httptest.NewRequest(http.MethodGet, "/livez", nil)))
	if body["status"] != "alive" {
		t.Errorf("expected status=alive, got %v", body["status"])
	}
}

func TestReadinessCheckBeforeLoad(t *testing.T) {
	a := setupTestApp(t, nil)

	w := serve(a, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first load, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status"] != "not ready" {
		t.Errorf("expected status='not ready', got %v", body["status"])
	}
	if _, ok := body["progress"].(map[string]any); !ok {
		t.Errorf("expected progress object, got %v", body["progress"])
	}
}

func TestReadinessCheckAfterLoad(t *testing.T) {
	a := setupTestApp(t, nil)
	if _, err := a.snapshots.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	w := serve(a, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["status"] != "ready" {
		t.Errorf("expected status=ready, got %v", body["status"])
	}
	if body["source"] != config.SourceFile {
		t.Errorf("expected source=%s, got %v", config.SourceFile, body["source"])
	}
	counts, ok := body["snapshot"].(map[string]any)
	if !ok {
		t.Fatalf("expected snapshot counts, got %v", body["snapshot"])
	}
	if counts["professors_loaded"] != float64(5) {
		t.Errorf("expected 5 professors, got %v", counts["professors_loaded"])
	}
	features, ok := body["features"].(map[string]any)
	if !ok {
		t.Fatalf("expected features object, got %v", body["features"])
	}
	if features["line_webhook"] != false || features["reload_broadcast"] != false {
		t.Errorf("expected optional features disabled, got %v", features)
	}
}

func TestChatEndToEnd(t *testing.T) {
	a := setupTestApp(t, nil)
	if _, err := a.snapshots.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"message":"Who teaches database","session_id":"e2e"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(a, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["intent"] != "who_teaches" {
		t.Errorf("expected intent who_teaches, got %v", body["intent"])
	}
	if resp, _ := body["response"].(string); !strings.Contains(resp, "Dr. Anna Reyes") {
		t.Errorf("expected response to name Dr. Anna Reyes, got %q", resp)
	}
	if a.sessions.Len() != 1 {
		t.Errorf("expected 1 session, got %d", a.sessions.Len())
	}
}

func TestReloadDataEndpoint(t *testing.T) {
	a := setupTestApp(t, nil)

	w := serve(a, httptest.NewRequest(http.MethodPost, "/reload-data", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !a.snapshots.Ready() {
		t.Error("expected snapshot to be ready after reload")
	}
	if got := a.snapshots.Current().Version(); got != 1 {
		t.Errorf("expected snapshot version 1, got %d", got)
	}
}

func TestWebhookRouteRequiresLINE(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		a := setupTestApp(t, nil)
		w := serve(a, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}")))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 without LINE credentials, got %d", w.Code)
		}
	})

	t.Run("enabled before load", func(t *testing.T) {
		a := setupTestApp(t, func(cfg *config.Config) {
			cfg.LINE = config.LINEConfig{ChannelSecret: "secret", ChannelToken: "token"}
		})
		w := serve(a, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}")))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503 while loading, got %d", w.Code)
		}
		if got := w.Header().Get("Retry-After"); got != "30" {
			t.Errorf("expected Retry-After 30, got %q", got)
		}
	})

	t.Run("enabled after load", func(t *testing.T) {
		a := setupTestApp(t, func(cfg *config.Config) {
			cfg.LINE = config.LINEConfig{ChannelSecret: "secret", ChannelToken: "token"}
		})
		if _, err := a.snapshots.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		// Unsigned requests are rejected by the handler.
		w := serve(a, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}")))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for missing signature, got %d", w.Code)
		}
	})
}

func TestMetricsEndpointAuth(t *testing.T) {
	a := setupTestApp(t, nil)

	w := serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.SetBasicAuth("prometheus", "secret")
	w = serve(a, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "findmyprof_http_errors_total") {
		t.Error("expected the failed attempt to appear in the metrics output")
	}
}

func TestSessionEndpointAuth(t *testing.T) {
	a := setupTestApp(t, nil)

	w := serve(a, httptest.NewRequest(http.MethodGet, "/sessions/someone", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); got != `Basic realm="sessions"` {
		t.Errorf("WWW-Authenticate = %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/sessions/someone", nil)
	req.SetBasicAuth("prometheus", "secret")
	w = serve(a, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown session with credentials, got %d", w.Code)
	}
}

func TestResponseHeaders(t *testing.T) {
	a := setupTestApp(t, nil)

	w := serve(a, httptest.NewRequest(http.MethodGet, "/livez", nil))
	want := map[string]string{
		"X-Content-Type-Options":      "nosniff",
		"X-Frame-Options":             "DENY",
		"Access-Control-Allow-Origin": "*",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("header %s: expected %q, got %q", k, v, got)
		}
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	preflight.Header.Set("Origin", "https://example.edu")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = serve(a, preflight)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
}
