package handler

import (
	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/handler/grpc"
	"github.com/MKhiriev/speech-analytics/internal/handler/http"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger.WithComponent("http"))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger.WithComponent("grpc"))
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
