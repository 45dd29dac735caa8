// Package grpc exposes the standard gRPC health service. Its serving
// status mirrors the result of [service.HealthService.Check] and is
// refreshed by a background prober.
package grpc

import (
	"context"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/service"
	"github.com/MKhiriev/speech-analytics/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported next to the server-wide "" entry.
const ServiceName = "speech_analytics.v1.SpeechAnalytics"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services start as NOT_SERVING until
// the first [Handler.Probe].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe runs the health check and publishes the result. Degraded
// components still count as serving.
func (h *Handler) Probe(ctx context.Context) {
	report := h.services.HealthService.Check(ctx)

	status := healthpb.HealthCheckResponse_SERVING
	if report.Status == models.HealthStatusUnhealthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.logger.Debug().
		Str("health", string(report.Status)).
		Str("serving_status", status.String()).
		Msg("gRPC health probed")
	h.setStatus(status)
}

// Shutdown switches every service to NOT_SERVING and ignores later probes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
