package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/logger"
)

const (
	minKeysRefreshInterval = 10 * time.Second
	keysRefreshTimeout     = 30 * time.Second
)

// KeysRefresher downloads the signing keys ahead of their expiry so that
// token verification never waits for the identity provider.
type KeysRefresher struct {
	keys     adapter.KeyProvider
	interval time.Duration
	logger   *logger.Logger
}

// NewKeysRefresher returns a refresher. An interval of zero becomes three
// quarters of keysTTL.
func NewKeysRefresher(keys adapter.KeyProvider, interval, keysTTL time.Duration, logger *logger.Logger) *KeysRefresher {
	if interval <= 0 {
		interval = keysTTL * 3 / 4
	}
	interval = max(interval, minKeysRefreshInterval)

	return &KeysRefresher{
		keys:     keys,
		interval: interval,
		logger:   logger.WithComponent("keys_refresher"),
	}
}

func (w *KeysRefresher) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("keys refresher started")
	every(ctx, w.interval, w.refresh)
}

func (w *KeysRefresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, keysRefreshTimeout)
	defer cancel()

	if err := w.keys.Refresh(ctx); err != nil {
		// cached keys stay in use until the next tick
		w.logger.Err(err).Msg("refreshing signing keys failed")
		return
	}

	status := w.keys.Status()
	w.logger.Debug().Int("keys", status.Keys).Time("expires_at", status.ExpiresAt).Msg("signing keys refreshed")
}
