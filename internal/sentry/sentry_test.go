package sentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		enabled bool
		want    string
		wantErr bool
	}{
		{name: "disabled", cfg: Config{}, enabled: false, wantErr: true},
		{name: "explicit dsn", cfg: Config{DSN: "https://key@sentry.example.com/42", Token: "ignored"}, enabled: true, want: "https://key@sentry.example.com/42"},
		{name: "better stack", cfg: Config{Token: "tok", Host: "errors.betterstack.com"}, enabled: true, want: "https://tok@errors.betterstack.com/1"},
		{name: "token without host", cfg: Config{Token: "tok"}, enabled: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.enabled, tt.cfg.Enabled())
			got, err := tt.cfg.dsn()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialize(t *testing.T) {
	// Sentry keeps global state, so these run sequentially.

	require.NoError(t, Initialize(Config{}))
	assert.Error(t, Initialize(Config{Token: "test-token"}))

	require.NoError(t, Initialize(Config{
		Token:       "test-token",
		Host:        "errors.betterstack.com",
		Environment: "test",
		SampleRate:  5,
	}))
	assert.True(t, IsEnabled())

	// Capturing must not panic with or without a context hub.
	CaptureException(context.Background(), errors.New("boom"))
	CaptureException(context.Background(), nil)
	CaptureRecovered(context.Background(), "panic value", "who teaches x")

	Flush(100 * time.Millisecond)
}
