package snapshot

import (
	"sync/atomic"
	"time"
)

// Readiness tracks whether the first snapshot load has finished.
// startTime and timeout are immutable after construction.
type Readiness struct {
	ready     atomic.Bool
	startTime time.Time
	timeout   time.Duration
}

// ReadinessStatus is the /readyz response body.
type ReadinessStatus struct {
	Ready          bool   `json:"ready"`
	Reason         string `json:"reason,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// NewReadiness returns a state that becomes ready on MarkReady or once
// timeout has elapsed, whichever comes first.
func NewReadiness(timeout time.Duration) *Readiness {
	return &Readiness{
		startTime: time.Now(),
		timeout:   timeout,
	}
}

// IsReady reports whether traffic should be accepted.
func (r *Readiness) IsReady() bool {
	return r.ready.Load() || time.Since(r.startTime) >= r.timeout
}

// MarkReady records that a snapshot has been loaded.
func (r *Readiness) MarkReady() {
	r.ready.Store(true)
}

// Loaded reports whether MarkReady was called, ignoring the timeout.
func (r *Readiness) Loaded() bool {
	return r.ready.Load()
}

// Status returns the current state for API responses.
func (r *Readiness) Status() ReadinessStatus {
	isReady := r.IsReady()
	status := ReadinessStatus{
		Ready:          isReady,
		ElapsedSeconds: int(time.Since(r.startTime).Seconds()),
		TimeoutSeconds: int(r.timeout.Seconds()),
	}

	switch {
	case !isReady:
		status.Reason = "initial data load in progress"
	case !r.ready.Load():
		// Ready by timeout; serving an empty or stale snapshot.
		status.Reason = "grace period elapsed before first load"
	}
	return status
}
