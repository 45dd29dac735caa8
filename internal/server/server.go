package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/handler"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"golang.org/x/sync/errgroup"
)

// App owns the transport servers and the background workers.
type App struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    Runner

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer opens the listeners of every transport enabled in cfg. workers
// may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new server...")
	app := &App{
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	var err error
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		if app.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg, logger.WithComponent("http")); err != nil {
			return nil, err
		}
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		if app.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg, logger.WithComponent("grpc")); err != nil {
			app.closeListeners()
			return nil, err
		}
	}

	if app.httpServer == nil && app.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return app, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then shuts down.
func (a *App) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.Run(ctx)
}

// Run serves until ctx is done or a server fails, then stops the servers
// within the shutdown timeout and waits for the workers.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	if a.workers != nil {
		g.Go(func() error {
			a.workers.Run(gCtx)
			return nil
		})
	}
	for _, srv := range a.servers() {
		g.Go(srv.RunServer)
	}

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info().Msg("stopping servers")
		return a.Shutdown(context.Background())
	})

	err := g.Wait()
	if err != nil {
		a.logger.Err(err).Msg("server stopped with error")
		return err
	}

	a.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown stops every server. The shutdown timeout is applied on top of
// ctx.
func (a *App) Shutdown(ctx context.Context) error {
	if a.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, srv := range a.servers() {
		errs = append(errs, srv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (a *App) servers() []Server {
	var servers []Server
	if a.httpServer != nil {
		servers = append(servers, a.httpServer)
	}
	if a.gRPCServer != nil {
		servers = append(servers, a.gRPCServer)
	}
	return servers
}

func (a *App) closeListeners() {
	if a.httpServer != nil {
		_ = a.httpServer.listener.Close()
	}
}
