package store

import (
	"context"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PersonRepository persists speakers.
type PersonRepository interface {
	CreatePerson(ctx context.Context, person models.Person) error
	GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error)
	ListPersons(ctx context.Context, page models.Page) ([]models.Person, error)
	UpdatePerson(ctx context.Context, person models.Person) (models.Person, error)
	DeletePerson(ctx context.Context, uid uuid.UUID) error
}

// SpeechRepository persists speeches together with their speakers and
// sentences.
type SpeechRepository interface {
	CreateSpeech(ctx context.Context, speech models.Speech) error
	// GetSpeech returns the speech with its speakers and ordered sentences.
	GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error)
	// ListSpeeches returns speeches without sentences, newest first.
	ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error)
	UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) error
	DeleteSpeech(ctx context.Context, uid uuid.UUID) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
