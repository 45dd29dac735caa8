package service

import (
	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/media"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/models"
)

type Services struct {
	AuthService    AuthService
	PersonService  PersonService
	SpeechService  SpeechService
	HealthService  HealthService
	AppInfoService AppInfoService
}

// Dependencies are the adapters shared by the services.
type Dependencies struct {
	Storages *store.Storages
	Keys     adapter.KeyProvider
	Media    media.Presigner
	Cache    cache.Cache
	Build    models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	c := deps.Cache
	if c == nil {
		c = cache.NopCache{}
	}

	personService := NewPersonService(deps.Storages.PersonRepository, logger)
	personService = NewPersonCacheService(c).Wrap(personService)
	personService = NewPersonValidationService().Wrap(personService)

	speechService := NewSpeechService(deps.Storages.SpeechRepository, deps.Media, logger)
	speechService = NewSpeechCacheService(c).Wrap(speechService)
	speechService = NewSpeechValidationService().Wrap(speechService)

	health := NewHealthService(HealthComponents{
		Database:     deps.Storages.DB,
		Media:        deps.Media,
		Keys:         deps.Keys,
		Cache:        c,
		CacheEnabled: cfg.Cache.IsEnabled(),
	}, cfg.App.Version, logger)

	return &Services{
		AuthService:    NewAuthService(deps.Keys, cfg.Keycloak, logger),
		PersonService:  personService,
		SpeechService:  speechService,
		HealthService:  health,
		AppInfoService: appInfo,
	}, nil
}
