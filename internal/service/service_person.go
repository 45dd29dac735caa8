package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

type personService struct {
	personRepository store.PersonRepository
	uuidGenerator    utils.UUIDGenerator

	logger *logger.Logger
}

func NewPersonService(personRepository store.PersonRepository, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		logger:           logger,
	}
}

// CreatePerson stores a new person. Trust score and lie quantity always
// start at zero.
func (p *personService) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	person.UID = p.uuidGenerator.Generate()
	person.TrustScore = 0
	person.LieQuantity = 0

	if err := p.personRepository.CreatePerson(ctx, person); err != nil {
		return models.Person{}, fmt.Errorf("error creating person: %w", err)
	}

	logger.FromContext(ctx).Info().Str("uid", person.UID.String()).Msg("person created")
	return person, nil
}

func (p *personService) GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error) {
	return p.personRepository.GetPerson(ctx, uid)
}

func (p *personService) ListPersons(ctx context.Context, page models.Page) ([]models.Person, error) {
	return p.personRepository.ListPersons(ctx, page)
}

func (p *personService) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	updated, err := p.personRepository.UpdatePerson(ctx, person)
	if err != nil {
		return models.Person{}, fmt.Errorf("error updating person: %w", err)
	}

	return updated, nil
}

func (p *personService) DeletePerson(ctx context.Context, uid uuid.UUID) error {
	if err := p.personRepository.DeletePerson(ctx, uid); err != nil {
		return fmt.Errorf("error deleting person: %w", err)
	}

	logger.FromContext(ctx).Info().Str("uid", uid.String()).Msg("person deleted")
	return nil
}
