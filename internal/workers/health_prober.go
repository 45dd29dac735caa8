package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/logger"
)

// HealthProber refreshes a published health status on a fixed interval.
type HealthProber struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthProber(prober Prober, interval time.Duration, logger *logger.Logger) *HealthProber {
	return &HealthProber{
		prober:   prober,
		interval: interval,
		logger:   logger.WithComponent("health_prober"),
	}
}

func (w *HealthProber) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health prober started")
	every(ctx, w.interval, w.prober.Probe)
}
