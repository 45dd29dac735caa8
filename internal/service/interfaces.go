package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PersonServiceWrapper,SpeechServiceWrapper

// AuthService turns Authorization headers into caller identities and checks
// permissions.
type AuthService interface {
	// Authenticate verifies the bearer token in header. An empty header
	// yields [models.AnonymousToken].
	Authenticate(ctx context.Context, header string) (models.AuthToken, error)
	// Authorize returns [ErrAccessDenied] when token lacks permission.
	Authorize(ctx context.Context, token models.AuthToken, permission models.Permission) error
}

type PersonService interface {
	// CreatePerson assigns a uid to person and stores it.
	CreatePerson(ctx context.Context, person models.Person) (models.Person, error)
	GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error)
	ListPersons(ctx context.Context, page models.Page) ([]models.Person, error)
	// UpdatePerson replaces name, first name and birth date of person.UID.
	UpdatePerson(ctx context.Context, person models.Person) (models.Person, error)
	DeletePerson(ctx context.Context, uid uuid.UUID) error
}

type SpeechService interface {
	// CreateSpeech assigns uids and sentence indexes and stores the speech
	// as PENDING.
	CreateSpeech(ctx context.Context, speech models.Speech) (models.Speech, error)
	GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error)
	ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error)
	UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) (models.Speech, error)
	DeleteSpeech(ctx context.Context, uid uuid.UUID) error
	// MediaURL returns a temporary download link for the speech recording.
	MediaURL(ctx context.Context, uid uuid.UUID) (*url.URL, error)
}

type HealthService interface {
	Check(ctx context.Context) models.Health
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// HealthChecker is a dependency able to report its own reachability.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// PersonServiceWrapper defines middleware composition for PersonService.
// Implementations wrap an existing PersonService to add behavior such as
// validating or caching.
type PersonServiceWrapper interface {
	Wrap(PersonService) PersonService
}

// SpeechServiceWrapper defines middleware composition for SpeechService.
type SpeechServiceWrapper interface {
	Wrap(SpeechService) SpeechService
}
