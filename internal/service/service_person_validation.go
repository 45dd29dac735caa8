package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/speech-analytics/internal/validators"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

type PersonValidationService struct {
	inner     PersonService
	validator validators.Validator
}

func NewPersonValidationService() PersonServiceWrapper {
	return &PersonValidationService{
		validator: validators.NewPersonValidator(),
	}
}

func (v *PersonValidationService) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	// uid is assigned by the inner service
	if err := v.validator.Validate(ctx, person,
		validators.FieldName, validators.FieldFirstName, validators.FieldBirthDate); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreatePerson(ctx, person)
}

func (v *PersonValidationService) GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error) {
	if err := v.validateUID(ctx, uid); err != nil {
		return models.Person{}, err
	}

	return v.inner.GetPerson(ctx, uid)
}

func (v *PersonValidationService) ListPersons(ctx context.Context, page models.Page) ([]models.Person, error) {
	return v.inner.ListPersons(ctx, page)
}

func (v *PersonValidationService) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	if err := v.validator.Validate(ctx, person); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdatePerson(ctx, person)
}

func (v *PersonValidationService) DeletePerson(ctx context.Context, uid uuid.UUID) error {
	if err := v.validateUID(ctx, uid); err != nil {
		return err
	}

	return v.inner.DeletePerson(ctx, uid)
}

func (v *PersonValidationService) validateUID(ctx context.Context, uid uuid.UUID) error {
	if err := v.validator.Validate(ctx, models.Person{UID: uid}, validators.FieldUID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *PersonValidationService) Wrap(wrapper PersonService) PersonService {
	v.inner = wrapper
	return v
}
