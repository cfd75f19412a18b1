package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type codeCacheRefresher struct {
	cache    Refresher
	interval time.Duration
	logger   *logger.Logger
}

// NewCodeCacheRefresher returns a worker reloading cache every
// cfg.CodeCacheRefreshInterval. A non-positive interval defaults to 5 minutes.
func NewCodeCacheRefresher(cache Refresher, cfg config.Workers, logger *logger.Logger) Worker {
	interval := cfg.CodeCacheRefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &codeCacheRefresher{cache: cache, interval: interval, logger: logger}
}

func (r *codeCacheRefresher) Run(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Msg("code cache refresher started")

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("code cache refresher stopped")
			return
		case <-t.C:
			// a failed refresh keeps the previous snapshot; the next tick retries
			if err := r.cache.Refresh(ctx); err != nil {
				r.logger.Warn().Err(err).Msg("code cache refresh failed")
			}
		}
	}
}
