package app

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMetricsRouter(password string, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.GET("/metrics", basicAuthMiddleware(realmMetrics, "prometheus", password, m), func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})
	return router
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestBasicAuthMiddleware_NoPasswordBypass(t *testing.T) {
	t.Parallel()
	router := newMetricsRouter("", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metrics", w.Body.String())
}

func TestBasicAuthMiddleware_ValidCredentials(t *testing.T) {
	t.Parallel()
	router := newMetricsRouter("secret123", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", basic("prometheus", "secret123"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metrics", w.Body.String())
}

func TestBasicAuthMiddleware_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong username", basic("wronguser", "secret123")},
		{"wrong password", basic("prometheus", "wrongpass")},
		{"both wrong", basic("wronguser", "wrongpass")},
		{"only basic", "Basic"},
		{"invalid base64", "Basic notbase64!!!"},
		{"bearer token", "Bearer sometoken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := metrics.New(prometheus.NewRegistry())
			router := newMetricsRouter("secret123", m)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, `Basic realm="metrics"`, w.Header().Get("WWW-Authenticate"))
			assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("unauthorized", "metrics")), 0)
		})
	}
}
