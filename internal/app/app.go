// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/api"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/bot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/broadcast"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/buildinfo"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/ratelimit"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sentry"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/session"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/snapshot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/webhook"
)

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg            *config.Config
	logger         *logger.Logger
	metrics        *metrics.Metrics
	registry       *prometheus.Registry
	snapshots      *snapshot.Manager
	closeSource    func() error
	sessions       *session.Store
	chatLimiter    *ratelimit.KeyedLimiter
	lineLimiter    *ratelimit.KeyedLimiter // nil when LINE is disabled
	notifier       *broadcast.Notifier     // nil when Redis is not configured
	webhookHandler *webhook.Handler        // nil when LINE is disabled
	router         *gin.Engine
	server         *http.Server
	wg             sync.WaitGroup // Track background goroutines for graceful shutdown
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(logger.Options{
		Level:               cfg.LogLevel,
		Writer:              os.Stdout,
		BetterStackToken:    cfg.BetterStack.Token,
		BetterStackEndpoint: cfg.BetterStack.Endpoint,
	})
	log = log.WithField("service", cfg.ServerName).WithField("instance_id", cfg.InstanceID)

	// Package-level slog calls pick up tracing values through the same handler.
	slog.SetDefault(log.Logger)

	log.WithField("version", buildinfo.VersionOrDefault()).Info("Initializing application...")
	if cfg.BetterStack.Token != "" {
		log.WithField("endpoint", cfg.BetterStack.Endpoint).Info("Better Stack logging enabled")
	}

	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.Sentry.DSN,
		Token:       cfg.Sentry.Token,
		Host:        cfg.Sentry.Host,
		Environment: cfg.Sentry.Environment,
		Release:     buildinfo.VersionOrDefault(),
		SampleRate:  cfg.Sentry.SampleRate,
	}); err != nil {
		log.WithError(err).Warn("Sentry initialization failed")
	} else if sentry.IsEnabled() {
		log.Info("Sentry error reporting enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	source, closeSource, err := newSource(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	manager := snapshot.NewManager(snapshot.Config{
		Source:          source,
		Logger:          log,
		Metrics:         m,
		RefreshInterval: cfg.Snapshot.RefreshInterval,
		GracePeriod:     cfg.Snapshot.GracePeriod,
	})

	processor := bot.NewProcessor(bot.ProcessorConfig{
		Snapshots: manager,
		Logger:    log,
		Metrics:   m,
	})
	sessions := session.New(cfg.Session.MaxSessions, cfg.Session.TTL, cfg.Session.MaxTurns)
	chatLimiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:       "chat",
		Burst:      cfg.Chat.RateBurst,
		RefillRate: cfg.Chat.RateRefill,
		Metrics:    m,
	})

	a := &Application{
		cfg:         cfg,
		logger:      log,
		metrics:     m,
		registry:    registry,
		snapshots:   manager,
		closeSource: closeSource,
		sessions:    sessions,
		chatLimiter: chatLimiter,
	}

	if cfg.Redis.URL != "" {
		notifier, err := broadcast.New(ctx, broadcast.Config{
			URL:     cfg.Redis.URL,
			Channel: cfg.Redis.Channel,
			Origin:  cfg.InstanceID,
			Logger:  log,
			Metrics: m,
		})
		if err != nil {
			log.WithError(err).Warn("Reload broadcast disabled: Redis unavailable")
		} else {
			a.notifier = notifier
			log.WithField("channel", cfg.Redis.Channel).Info("Reload broadcast enabled")
		}
	}

	apiCfg := api.Config{
		Processor:        processor,
		Snapshots:        manager,
		Reloader:         manager,
		Sessions:         sessions,
		Limiter:          chatLimiter,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		Version:          buildinfo.VersionOrDefault(),
		Logger:           log,
		Metrics:          m,
	}
	// A nil *Notifier must not become a non-nil interface.
	if a.notifier != nil {
		apiCfg.Publisher = a.notifier
	}
	apiHandler := api.NewHandler(apiCfg)

	if cfg.LINE.Enabled() {
		a.lineLimiter = ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
			Name:       "line",
			Burst:      cfg.Chat.RateBurst,
			RefillRate: cfg.Chat.RateRefill,
			Metrics:    m,
		})
		a.webhookHandler, err = webhook.NewHandler(webhook.HandlerConfig{
			ChannelSecret:    cfg.LINE.ChannelSecret,
			ChannelToken:     cfg.LINE.ChannelToken,
			Processor:        processor,
			Sessions:         sessions,
			UserLimiter:      a.lineLimiter,
			ReplyRateRPS:     cfg.Chat.ReplyRateRPS,
			MaxMessageLength: cfg.Chat.MaxMessageLength,
			Logger:           log,
			Metrics:          m,
		})
		if err != nil {
			a.closeResources()
			return nil, fmt.Errorf("webhook: %w", err)
		}
		log.Info("LINE webhook enabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	router.Use(securityHeadersMiddleware())
	router.Use(corsMiddleware())
	router.Use(loggingMiddleware(log))

	apiHandler.Register(router,
		basicAuthMiddleware(realmSessions, cfg.MetricsUsername, cfg.MetricsPassword, m))
	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/readyz", a.readinessCheck)
	router.HEAD("/readyz", a.readinessCheck)
	if a.webhookHandler != nil {
		router.POST("/webhook", readinessMiddleware(manager.Readiness()), a.webhookHandler.Handle)
	}
	router.GET("/metrics",
		basicAuthMiddleware(realmMetrics, cfg.MetricsUsername, cfg.MetricsPassword, m),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	a.router = router
	a.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: config.HTTPRead,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
	}

	log.WithField("source", manager.SourceName()).Info("Initialization complete")
	return a, nil
}

// Handler returns the HTTP handler serving every route.
func (a *Application) Handler() http.Handler {
	return a.router
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func (a *Application) readinessCheck(c *gin.Context) {
	status := a.snapshots.Readiness().Status()
	if !status.Ready {
		a.logger.WithField("elapsed_seconds", status.ElapsedSeconds).
			WithField("timeout_seconds", status.TimeoutSeconds).
			Debug("Readiness check: initial load in progress")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": status.Reason,
			"progress": gin.H{
				"elapsed_seconds": status.ElapsedSeconds,
				"timeout_seconds": status.TimeoutSeconds,
			},
		})
		return
	}

	snap := a.snapshots.Current()
	body := gin.H{
		"status":           "ready",
		"source":           a.snapshots.SourceName(),
		"snapshot":         snap.Counts(),
		"snapshot_version": snap.Version(),
		"features": gin.H{
			"line_webhook":     a.webhookHandler != nil,
			"reload_broadcast": a.notifier != nil,
		},
	}
	if status.Reason != "" {
		body["reason"] = status.Reason
	}
	if err := a.snapshots.LastError(); err != nil {
		body["last_refresh_error"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// Run starts the HTTP server and background jobs, then blocks until
// SIGINT or SIGTERM.
//
// Shutdown order:
//  1. Cancel the context so background jobs stop
//  2. Wait for background jobs
//  3. Stop the HTTP server and drain in-flight webhook events
//  4. Close the snapshot source, Redis and rate limiters
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.startBackgroundJobs(ctx)
	serverErr := a.startHTTPServer()

	select {
	case sig := <-a.waitForShutdownSignal():
		a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErr:
		a.logger.WithError(err).Error("HTTP server stopped unexpectedly")
	}

	cancel()

	a.logger.Info("Waiting for background jobs to finish...")
	start := time.Now()
	a.snapshots.Stop()
	a.wg.Wait()
	a.logger.WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("All background jobs completed")

	return a.shutdown()
}

// startBackgroundJobs starts the snapshot poller, the reload listener and
// the gauge updater.
func (a *Application) startBackgroundJobs(ctx context.Context) {
	a.snapshots.Start(ctx)

	if a.notifier != nil {
		a.wg.Go(func() {
			a.listenForReloads(ctx)
		})
	}
	a.wg.Go(func() {
		a.updateGaugeMetrics(ctx)
	})
}

// startHTTPServer starts the HTTP server in a goroutine. The channel
// receives an error if the server fails to listen or serve.
func (a *Application) startHTTPServer() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func (a *Application) waitForShutdownSignal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}

// listenForReloads refreshes the snapshot when another instance reports a
// reload. It resubscribes after connection errors until ctx is done.
func (a *Application) listenForReloads(ctx context.Context) {
	a.logger.Debug("Reload listener started")
	defer a.logger.Debug("Reload listener stopped")

	for {
		err := a.notifier.Listen(ctx, a.handleReloadBroadcast)
		if ctx.Err() != nil {
			return
		}
		a.logger.WithError(err).Warn("Reload listener disconnected; retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (a *Application) handleReloadBroadcast(ctx context.Context, msg broadcast.Message) {
	a.logger.WithField("origin", msg.Origin).
		WithField("reason", msg.Reason).
		Info("Reload requested by peer")
	if _, err := a.snapshots.Refresh(ctx); err != nil {
		a.logger.WithError(err).Warn("Peer-requested reload failed")
	}
}

// updateGaugeMetrics periodically publishes gauges that are not updated
// inline, such as the live session count.
func (a *Application) updateGaugeMetrics(ctx context.Context) {
	ticker := time.NewTicker(config.MetricsUpdateInterval)
	defer ticker.Stop()

	for {
		a.metrics.SetSessionsActive(a.sessions.Len())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// shutdown stops the HTTP server and releases resources. It is called after
// background jobs have finished.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
	}

	if a.webhookHandler != nil {
		a.logger.Info("Waiting for webhook events to complete...")
		if err := a.webhookHandler.Shutdown(shutdownCtx); err != nil {
			a.logger.WithError(err).Warn("Webhook handler shutdown timeout")
		}
	}

	a.logger.Info("Closing resources...")
	a.closeResources()

	sentry.Flush(2 * time.Second)

	a.logger.Info("Shutdown complete")
	if err := a.logger.Shutdown(shutdownCtx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "logger shutdown: %v\n", err)
	}
	return nil
}

// closeResources releases everything Initialize opened. It is safe to call
// on a partially initialized Application.
func (a *Application) closeResources() {
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			a.logger.WithError(err).WithField("component", "redis").Error("Component close error")
		}
	}
	if a.closeSource != nil {
		if err := a.closeSource(); err != nil {
			a.logger.WithError(err).WithField("component", "snapshot_source").Error("Component close error")
		}
	}
	if a.chatLimiter != nil {
		a.chatLimiter.Stop()
	}
	if a.lineLimiter != nil {
		a.lineLimiter.Stop()
	}
}
