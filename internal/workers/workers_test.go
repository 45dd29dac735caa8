// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

type countingProber struct {
	probes atomic.Int32
	done   chan struct{}
	target int32
}

func (p *countingProber) Probe(context.Context) {
	if p.probes.Add(1) == p.target {
		close(p.done)
	}
}

func runAsync(ctx context.Context, w Worker) <-chan struct{} {
	stopped := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(stopped)
	}()
	return stopped
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

// ── Workers ───────────────────────────────────────────────────────────────────

func TestWorkers_RunsAllUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(logger.Nop(), w1)
	ws.Add(w2)
	ws.Add(nil)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := runAsync(ctx, ws)

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	waitClosed(t, stopped)
	assert.Len(t, ws.workers, 2)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	waitClosed(t, runAsync(context.Background(), ws))
}

func TestEvery_RunsImmediatelyAndOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		every(ctx, 5*time.Millisecond, func(context.Context) {
			if calls.Add(1) == 3 {
				cancel()
			}
		})
		close(done)
	}()

	waitClosed(t, done)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

// ── KeysRefresher ─────────────────────────────────────────────────────────────

func TestNewKeysRefresher_Interval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		ttl      time.Duration
		want     time.Duration
	}{
		{name: "explicit", interval: 20 * time.Minute, ttl: time.Hour, want: 20 * time.Minute},
		{name: "derived from ttl", ttl: time.Hour, want: 45 * time.Minute},
		{name: "floor", interval: time.Second, ttl: time.Hour, want: minKeysRefreshInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewKeysRefresher(nil, tt.interval, tt.ttl, logger.Nop())
			assert.Equal(t, tt.want, w.interval)
		})
	}
}

func TestKeysRefresher_RefreshesOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyProvider(ctrl)

	refreshed := make(chan struct{})
	keys.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		close(refreshed)
		return nil
	})
	keys.EXPECT().Status().Return(adapter.KeySetStatus{Keys: 2, ExpiresAt: time.Now().Add(time.Hour)})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := runAsync(ctx, NewKeysRefresher(keys, time.Hour, time.Hour, logger.Nop()))

	waitClosed(t, refreshed)
	cancel()
	waitClosed(t, stopped)
}

func TestKeysRefresher_FailureKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyProvider(ctrl)

	failed := make(chan struct{})
	keys.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(failed)
		return errors.New("connection refused")
	})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := runAsync(ctx, NewKeysRefresher(keys, time.Hour, time.Hour, logger.Nop()))

	waitClosed(t, failed)
	select {
	case <-stopped:
		t.Fatal("refresher stopped after a failed refresh")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	waitClosed(t, stopped)
}

// ── CacheJanitor ──────────────────────────────────────────────────────────────

func TestCacheJanitor_PurgesExpired(t *testing.T) {
	c, err := cache.NewShardedCache(2, 1<<20, 10*time.Millisecond)
	require.NoError(t, err)
	c.Set("person:a", []byte("a"))
	c.Set("speech:b", []byte("b"))
	require.Equal(t, 2, c.Len())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := runAsync(ctx, NewCacheJanitor(c, 5*time.Millisecond, logger.Nop()))

	require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	waitClosed(t, stopped)
}

// ── HealthProber ──────────────────────────────────────────────────────────────

func TestHealthProber_ProbesPeriodically(t *testing.T) {
	p := &countingProber{done: make(chan struct{}), target: 3}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := runAsync(ctx, NewHealthProber(p, 5*time.Millisecond, logger.Nop()))

	waitClosed(t, p.done)
	cancel()
	waitClosed(t, stopped)
}
