package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) Refresh(_ context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestNewCodeCacheRefresher_DefaultInterval(t *testing.T) {
	w := NewCodeCacheRefresher(&fakeRefresher{}, config.Workers{}, logger.Nop())

	r, ok := w.(*codeCacheRefresher)
	require.True(t, ok)
	assert.Equal(t, defaultRefreshInterval, r.interval)
}

func TestCodeCacheRefresher_RefreshesOnTicks(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "successful refreshes"},
		{name: "failing refreshes keep ticking", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &fakeRefresher{err: tt.err}
			w := NewCodeCacheRefresher(cache, config.Workers{CodeCacheRefreshInterval: 2 * time.Millisecond}, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				w.Run(ctx)
				close(done)
			}()

			require.Eventually(t, func() bool { return cache.calls.Load() >= 3 }, time.Second, time.Millisecond)

			cancel()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("refresher did not stop after cancel")
			}
		})
	}
}

func TestCodeCacheRefresher_NoRefreshBeforeFirstTick(t *testing.T) {
	cache := &fakeRefresher{}
	w := NewCodeCacheRefresher(cache, config.Workers{CodeCacheRefreshInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Zero(t, cache.calls.Load())
}
