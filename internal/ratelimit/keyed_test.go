package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
)

func TestKeyedLimiter_Basic(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "test",
		Burst:         1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	if !kl.Allow("session1") {
		t.Error("session1 first request failed")
	}
	if kl.Allow("session1") {
		t.Error("session1 second request allowed (should limit)")
	}
	if !kl.Allow("session2") {
		t.Error("session2 first request failed")
	}
	if !kl.Allow("") {
		t.Error("empty key must never be limited")
	}
	if kl.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, want 2", kl.ActiveCount())
	}
}

func TestKeyedLimiter_RecordsDrops(t *testing.T) {
	t.Parallel()
	m := metrics.New(prometheus.NewRegistry())
	kl := NewKeyedLimiter(KeyedConfig{Name: "chat", Burst: 2, RefillRate: 0.001, Metrics: m})
	defer kl.Stop()

	for range 5 {
		kl.Allow("ip:10.0.0.1")
	}

	if got := testutil.ToFloat64(m.RateLimiterDropped.WithLabelValues("chat")); got != 3 {
		t.Errorf("dropped = %v, want 3", got)
	}
}

func TestKeyedLimiter_Cleanup(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "cleanup_test",
		Burst:         10,
		RefillRate:    100, // Fast refill to fill bucket quickly
		CleanupPeriod: 50 * time.Millisecond,
	})
	defer kl.Stop()

	kl.Allow("u1")
	if count := kl.ActiveCount(); count != 1 {
		t.Errorf("Active count = %d, want 1", count)
	}

	// Wait for refill (bucket full) + cleanup tick
	time.Sleep(200 * time.Millisecond)

	if count := kl.ActiveCount(); count != 0 {
		t.Errorf("Active count = %d, want 0 after cleanup", count)
	}
}

func TestKeyedLimiter_CleanupKeepsBusyKeys(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{Name: "busy", Burst: 5, RefillRate: 0.001, CleanupPeriod: time.Hour})
	defer kl.Stop()

	kl.Allow("busy")
	kl.Available("idle") // lookups do not create buckets

	if remaining := kl.cleanup(); remaining != 1 {
		t.Errorf("cleanup() left %d keys, want 1", remaining)
	}
}

func TestKeyedLimiter_ThreadSafety(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "concurrency_test",
		Burst:         1000,
		RefillRate:    1,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() {
			key := fmt.Sprintf("user%d", i%10) // 10 distinct keys
			kl.Allow(key)
			kl.Available(key)
		})
	}
	wg.Wait()

	if kl.ActiveCount() != 10 {
		t.Errorf("ActiveCount() = %d, want 10", kl.ActiveCount())
	}
}

func TestKeyedLimiter_Available(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{Name: "avail", Burst: 10, RefillRate: 1})
	defer kl.Stop()

	if v := kl.Available("new"); v != 10 {
		t.Errorf("new key available = %f, want 10", v)
	}

	kl.Allow("user1")
	if v := kl.Available("user1"); v >= 10 {
		t.Errorf("used key available = %f, want < 10", v)
	}
}

func TestKeyedLimiter_StopTwice(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{Name: "stop", Burst: 1, RefillRate: 1})
	kl.Stop()
	kl.Stop()
}
