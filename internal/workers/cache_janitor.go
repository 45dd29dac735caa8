package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/internal/logger"
)

// CacheJanitor drops expired cache entries so they stop holding memory.
type CacheJanitor struct {
	cache    cache.Cache
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheJanitor(c cache.Cache, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{
		cache:    c,
		interval: interval,
		logger:   logger.WithComponent("cache_janitor"),
	}
}

func (w *CacheJanitor) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("cache janitor started")
	every(ctx, w.interval, func(context.Context) {
		if n := w.cache.PurgeExpired(); n > 0 {
			w.logger.Debug().Int("purged", n).Int("entries", w.cache.Len()).Msg("expired cache entries purged")
		}
	})
}
