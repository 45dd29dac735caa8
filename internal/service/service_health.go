package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/media"
	"github.com/MKhiriev/speech-analytics/models"
	"golang.org/x/sync/errgroup"
)

const (
	componentDatabase = "database"
	componentMedia    = "media"
	componentKeycloak = "keycloak"
	componentCache    = "cache"

	componentCheckTimeout = 2 * time.Second
)

// HealthComponents lists the dependencies reported by the health endpoint.
// Only Database is required.
type HealthComponents struct {
	Database     HealthChecker
	Media        media.Presigner
	Keys         adapter.KeyProvider
	Cache        cache.Cache
	CacheEnabled bool
}

type healthService struct {
	components HealthComponents
	version    string
	now        func() time.Time

	logger *logger.Logger
}

func NewHealthService(components HealthComponents, version string, logger *logger.Logger) HealthService {
	return &healthService{
		components: components,
		version:    version,
		now:        time.Now,
		logger:     logger,
	}
}

// Check probes every component concurrently. A critical component that is
// down makes the service unhealthy; any other component down degrades it.
func (h *healthService) Check(ctx context.Context) models.Health {
	var (
		mu         sync.Mutex
		components = make(map[string]models.ComponentHealth, 4)
	)
	set := func(name string, c models.ComponentHealth) {
		mu.Lock()
		components[name] = c
		mu.Unlock()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set(componentDatabase, h.probe(gCtx, true, h.components.Database.Check))
		return nil
	})
	g.Go(func() error {
		set(componentMedia, h.checkMedia(gCtx))
		return nil
	})
	_ = g.Wait()

	set(componentKeycloak, h.checkKeys())
	set(componentCache, h.checkCache())

	return models.Health{
		Status:     overallStatus(components),
		Timestamp:  h.now().UTC(),
		Version:    h.version,
		Components: components,
	}
}

func (h *healthService) probe(ctx context.Context, critical bool, check func(context.Context) error) models.ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, componentCheckTimeout)
	defer cancel()

	start := h.now()
	err := check(ctx)
	latency := float64(h.now().Sub(start).Microseconds()) / 1000

	if err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		return models.ComponentHealth{
			Status:    models.ComponentStatusDown,
			Message:   err.Error(),
			LatencyMs: latency,
			Critical:  critical,
		}
	}

	return models.ComponentHealth{
		Status:    models.ComponentStatusUp,
		LatencyMs: latency,
		Critical:  critical,
	}
}

func (h *healthService) checkMedia(ctx context.Context) models.ComponentHealth {
	if h.components.Media == nil || !h.components.Media.Enabled() {
		return models.ComponentHealth{Status: models.ComponentStatusDisabled}
	}
	return h.probe(ctx, false, h.components.Media.Check)
}

func (h *healthService) checkKeys() models.ComponentHealth {
	if h.components.Keys == nil {
		return models.ComponentHealth{Status: models.ComponentStatusDisabled}
	}

	status := h.components.Keys.Status()
	if !status.Loaded() {
		return models.ComponentHealth{
			Status:  models.ComponentStatusDown,
			Message: "signing keys not loaded",
		}
	}

	return models.ComponentHealth{
		Status:  models.ComponentStatusUp,
		Message: fmt.Sprintf("%d keys, fetched at %s", status.Keys, status.FetchedAt.UTC().Format(time.RFC3339)),
	}
}

func (h *healthService) checkCache() models.ComponentHealth {
	if h.components.Cache == nil || !h.components.CacheEnabled {
		return models.ComponentHealth{Status: models.ComponentStatusDisabled}
	}

	return models.ComponentHealth{
		Status:  models.ComponentStatusUp,
		Message: fmt.Sprintf("%d entries", h.components.Cache.Len()),
	}
}

func overallStatus(components map[string]models.ComponentHealth) models.HealthStatus {
	status := models.HealthStatusHealthy
	for _, c := range components {
		if c.Status != models.ComponentStatusDown {
			continue
		}
		if c.Critical {
			return models.HealthStatusUnhealthy
		}
		status = models.HealthStatusDegraded
	}
	return status
}
