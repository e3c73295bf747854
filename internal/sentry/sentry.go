// Package sentry wraps the Sentry Go SDK. Events can go to any Sentry
// compatible backend: a plain DSN, or a Better Stack Errors token and host.
package sentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration.
type Config struct {
	// DSN is a complete Sentry DSN. It takes precedence over Token and Host.
	DSN string

	// Token is the Better Stack Errors application token.
	Token string

	// Host is the Better Stack Errors ingesting host (e.g., "errors.betterstack.com").
	Host string

	// Environment identifies the deployment environment (e.g., "production", "staging").
	Environment string

	// Release identifies the application release version.
	Release string

	// SampleRate controls error sampling (0.0-1.0, default 1.0 = 100%).
	SampleRate float64

	// Debug enables Sentry SDK debug logging.
	Debug bool
}

// Enabled reports whether the configuration turns Sentry on.
func (c Config) Enabled() bool {
	return c.DSN != "" || c.Token != ""
}

func (c Config) dsn() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	if c.Host == "" {
		return "", errors.New("sentry host is required when token is provided")
	}
	// The project ID is required by the SDK but ignored by Better Stack.
	return fmt.Sprintf("https://%s@%s/1", c.Token, c.Host), nil
}

// Initialize sets up the Sentry SDK. It is a no-op returning nil when the
// configuration enables nothing.
func Initialize(cfg Config) error {
	if !cfg.Enabled() {
		return nil
	}

	dsn, err := cfg.dsn()
	if err != nil {
		return err
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1.0
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// Flush waits for buffered events to be sent to the server.
// Returns true if all events were sent within the timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// IsEnabled returns true if Sentry is initialized and active.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureException captures an error with the hub bound to ctx, falling
// back to the global hub.
func CaptureException(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hubFrom(ctx).CaptureException(err)
}

// CaptureRecovered reports a value obtained from recover() with the message
// that triggered it attached as a tag.
func CaptureRecovered(ctx context.Context, recovered any, message string) {
	hub := hubFrom(ctx).Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "chat")
		scope.SetExtra("message", message)
	})
	hub.Recover(recovered)
}

func hubFrom(ctx context.Context) *sentry.Hub {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		return hub
	}
	return sentry.CurrentHub()
}
