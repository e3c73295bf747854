package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	domerrors "github.com/findmyprof/findmyprof-chatbot-go/internal/errors"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sentry"
)

// Refresh outcomes used as metric labels.
const (
	statusSuccess   = "success"
	statusUnchanged = "unchanged"
	statusError     = "error"
)

const refreshKey = "refresh"

// Config holds dependencies for creating a Manager.
// Logger, Metrics and OnRefresh are optional.
type Config struct {
	Source          Source
	Store           *directory.Store
	Logger          *logger.Logger
	Metrics         *metrics.Metrics
	RefreshInterval time.Duration // 0 disables polling
	GracePeriod     time.Duration

	// OnRefresh runs after a new snapshot is installed.
	OnRefresh func(*directory.Snapshot)
}

// Manager loads datasets from a Source into a Store. Concurrent refreshes
// share a single load.
type Manager struct {
	source    Source
	store     *directory.Store
	logger    *logger.Logger
	metrics   *metrics.Metrics
	interval  time.Duration
	onRefresh func(*directory.Snapshot)

	group     singleflight.Group
	readiness *Readiness

	lastErr atomic.Pointer[error]

	pollMu     sync.Mutex
	pollCancel context.CancelFunc
	pollWG     sync.WaitGroup
}

// NewManager creates a Manager. Nothing is loaded until Refresh or Start.
func NewManager(cfg Config) *Manager {
	if cfg.Store == nil {
		cfg.Store = directory.NewStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.New("info")
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = config.DefaultSnapshotGracePeriod
	}
	return &Manager{
		source:    cfg.Source,
		store:     cfg.Store,
		logger:    cfg.Logger.WithModule("snapshot"),
		metrics:   cfg.Metrics,
		interval:  cfg.RefreshInterval,
		onRefresh: cfg.OnRefresh,
		readiness: NewReadiness(cfg.GracePeriod),
	}
}

// Store returns the store the Manager writes to.
func (m *Manager) Store() *directory.Store { return m.store }

// Current returns the snapshot currently served.
func (m *Manager) Current() *directory.Snapshot { return m.store.Current() }

// SourceName returns the configured source name.
func (m *Manager) SourceName() string { return m.source.Name() }

// Refresh loads the source and installs the result. While a refresh is in
// flight, other callers wait for it and receive its result. On failure the
// previous snapshot stays in place. The shared load ignores the caller's
// cancellation so one departing caller cannot fail the others; it is bounded
// by config.SnapshotLoad instead.
func (m *Manager) Refresh(ctx context.Context) (*directory.Snapshot, error) {
	v, err, shared := m.group.Do(refreshKey, func() (any, error) {
		return m.refresh(context.WithoutCancel(ctx))
	})
	if shared && m.metrics != nil {
		m.metrics.RecordSingleflightDedup("snapshot")
	}
	if err != nil {
		return nil, err
	}
	return v.(*directory.Snapshot), nil
}

func (m *Manager) refresh(ctx context.Context) (*directory.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, config.SnapshotLoad)
	defer cancel()

	source := m.source.Name()
	start := time.Now()
	dataset, err := m.source.Load(ctx)
	elapsed := time.Since(start)

	if errors.Is(err, ErrUnchanged) {
		m.record(source, statusUnchanged, elapsed)
		m.lastErr.Store(nil)
		m.readiness.MarkReady()
		m.logger.Debug("Snapshot source unchanged", "source", source)
		return m.store.Current(), nil
	}
	if err != nil {
		m.record(source, statusError, elapsed)
		m.lastErr.Store(&err)
		m.logger.WithError(err).Error("Snapshot refresh failed, keeping previous snapshot",
			"source", source,
			"duration_ms", elapsed.Milliseconds())
		sentry.CaptureException(ctx, err)
		wrapper := domerrors.NewWrapper("snapshot", "refresh")
		return nil, wrapper.Wrap(fmt.Errorf("%w: %w", domerrors.ErrSnapshotUnavailable, err), "Failed to reload data")
	}

	snap := m.store.Swap(directory.NewSnapshotFromDataset(dataset))
	counts := snap.Counts()
	m.record(source, statusSuccess, elapsed)
	if m.metrics != nil {
		m.metrics.SetSnapshot(snap.Version(), counts.Professors, counts.Subjects, counts.Schedules, counts.Attachments)
	}
	m.lastErr.Store(nil)
	m.readiness.MarkReady()

	m.logger.Info("Snapshot refreshed",
		"source", source,
		"version", snap.Version(),
		"professors", counts.Professors,
		"subjects", counts.Subjects,
		"schedules", counts.Schedules,
		"attachments", counts.Attachments,
		"duration_ms", elapsed.Milliseconds())

	if m.onRefresh != nil {
		m.onRefresh(snap)
	}
	return snap, nil
}

func (m *Manager) record(source, status string, elapsed time.Duration) {
	if m.metrics != nil {
		m.metrics.RecordSnapshotRefresh(source, status, elapsed.Seconds())
	}
}

// LastError returns the error of the most recent refresh, or nil if it succeeded.
func (m *Manager) LastError() error {
	if p := m.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Ready reports whether the first load completed or the grace period elapsed.
func (m *Manager) Ready() bool { return m.readiness.IsReady() }

// Readiness returns the readiness state for /readyz.
func (m *Manager) Readiness() *Readiness { return m.readiness }

// Start performs an initial refresh in the background, then refreshes every
// RefreshInterval until ctx is done or Stop is called.
func (m *Manager) Start(ctx context.Context) {
	m.pollMu.Lock()
	defer m.pollMu.Unlock()
	if m.pollCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	m.pollCancel = cancel

	m.pollWG.Go(func() {
		_, _ = m.Refresh(ctx)
		if m.interval <= 0 {
			return
		}

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		m.logger.Info("Snapshot polling started", "source", m.source.Name(), "interval", m.interval)

		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Snapshot polling stopped")
				return
			case <-ticker.C:
				_, _ = m.Refresh(ctx)
			}
		}
	})
}

// Stop cancels polling and waits for an in-progress refresh to return.
func (m *Manager) Stop() {
	m.pollMu.Lock()
	cancel := m.pollCancel
	m.pollCancel = nil
	m.pollMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.pollWG.Wait()
}
