package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/handler"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/media"
	"github.com/MKhiriev/speech-analytics/internal/server"
	"github.com/MKhiriev/speech-analytics/internal/service"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/internal/workers"
	"github.com/MKhiriev/speech-analytics/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultAppVersion = "dev"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("speech-analytics")
	if err := run(log, build); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log *logger.Logger, build models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}
	if cfg.App.Version == defaultAppVersion && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("certs_url", cfg.Keycloak.CertsURL).
		Bool("cache", cfg.Cache.IsEnabled()).
		Bool("media", cfg.Media.Configured()).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Database, log.WithComponent("store"))
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if cErr := storages.Close(); cErr != nil {
			log.Err(cErr).Msg("error closing database")
		}
	}()

	cacheLog := log.WithComponent("cache")
	c, err := cache.New(cfg.Cache.IsEnabled(), cache.Options{
		Shards:   cfg.Cache.Shards,
		MaxBytes: cfg.Cache.MaxBytes,
		TTL:      cfg.Cache.TTL,
		OnEvict: func(key string) {
			cacheLog.Trace().Str("key", key).Msg("cache entry evicted")
		},
	})
	if err != nil {
		return err
	}

	presigner, err := media.New(cfg.Media, log.WithComponent("media"))
	if err != nil {
		return fmt.Errorf("error creating media presigner: %w", err)
	}

	keys := adapter.NewKeycloakKeyProvider(cfg.Keycloak, log.WithComponent("keycloak"))

	services, err := service.NewServices(service.Dependencies{
		Storages: storages,
		Keys:     keys,
		Media:    presigner,
		Cache:    c,
		Build:    build,
	}, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	jobs := workers.NewWorkers(log.WithComponent("workers"),
		workers.NewKeysRefresher(keys, cfg.Workers.KeysRefreshInterval, cfg.Keycloak.KeysTTL, log),
	)
	if cfg.Cache.IsEnabled() {
		interval := cfg.Workers.CacheJanitorInterval
		if interval <= 0 {
			interval = cfg.Cache.TTL
		}
		jobs.Add(workers.NewCacheJanitor(c, interval, log))
	}
	if handlers.GRPC != nil {
		jobs.Add(workers.NewHealthProber(handlers.GRPC, cfg.Workers.HealthProbeInterval, log))
	}

	app, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return app.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
