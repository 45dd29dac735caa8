package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/speech-analytics/internal/validators"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

type SpeechValidationService struct {
	inner     SpeechService
	validator validators.Validator
}

func NewSpeechValidationService() SpeechServiceWrapper {
	return &SpeechValidationService{
		validator: validators.NewSpeechValidator(),
	}
}

func (v *SpeechValidationService) CreateSpeech(ctx context.Context, speech models.Speech) (models.Speech, error) {
	if err := v.validator.Validate(ctx, speech,
		validators.FieldName,
		validators.FieldDate,
		validators.FieldSpeakers,
		validators.FieldSentences,
		validators.FieldMedia,
	); err != nil {
		return models.Speech{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateSpeech(ctx, speech)
}

func (v *SpeechValidationService) GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error) {
	if err := v.validateUID(ctx, uid); err != nil {
		return models.Speech{}, err
	}

	return v.inner.GetSpeech(ctx, uid)
}

func (v *SpeechValidationService) ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error) {
	return v.inner.ListSpeeches(ctx, filter)
}

func (v *SpeechValidationService) UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) (models.Speech, error) {
	if err := v.validateUID(ctx, uid); err != nil {
		return models.Speech{}, err
	}
	if err := v.validator.Validate(ctx, status); err != nil {
		return models.Speech{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateSpeechStatus(ctx, uid, status)
}

func (v *SpeechValidationService) DeleteSpeech(ctx context.Context, uid uuid.UUID) error {
	if err := v.validateUID(ctx, uid); err != nil {
		return err
	}

	return v.inner.DeleteSpeech(ctx, uid)
}

func (v *SpeechValidationService) MediaURL(ctx context.Context, uid uuid.UUID) (*url.URL, error) {
	if err := v.validateUID(ctx, uid); err != nil {
		return nil, err
	}

	return v.inner.MediaURL(ctx, uid)
}

func (v *SpeechValidationService) validateUID(ctx context.Context, uid uuid.UUID) error {
	if err := v.validator.Validate(ctx, models.Speech{UID: uid}, validators.FieldUID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *SpeechValidationService) Wrap(wrapper SpeechService) SpeechService {
	v.inner = wrapper
	return v
}
