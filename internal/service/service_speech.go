package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/media"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

type speechService struct {
	speechRepository store.SpeechRepository
	presigner        media.Presigner
	uuidGenerator    utils.UUIDGenerator

	logger *logger.Logger
}

func NewSpeechService(speechRepository store.SpeechRepository, presigner media.Presigner, logger *logger.Logger) SpeechService {
	if presigner == nil {
		presigner = media.DisabledPresigner{}
	}

	return &speechService{
		speechRepository: speechRepository,
		presigner:        presigner,
		logger:           logger,
	}
}

func (s *speechService) CreateSpeech(ctx context.Context, speech models.Speech) (models.Speech, error) {
	speech.UID = s.uuidGenerator.Generate()
	speech.Status = models.SpeechStatusPending
	speech.Date = speech.Date.UTC()

	sentences := make([]models.Sentence, len(speech.Sentences))
	for i, sentence := range speech.Sentences {
		sentence.UID = s.uuidGenerator.Generate()
		sentence.Index = i
		sentences[i] = sentence
	}
	speech.Sentences = sentences

	if err := s.speechRepository.CreateSpeech(ctx, speech); err != nil {
		return models.Speech{}, fmt.Errorf("error creating speech: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("uid", speech.UID.String()).
		Int("sentences", len(speech.Sentences)).
		Msg("speech created")
	return speech, nil
}

func (s *speechService) GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error) {
	return s.speechRepository.GetSpeech(ctx, uid)
}

func (s *speechService) ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error) {
	return s.speechRepository.ListSpeeches(ctx, filter)
}

func (s *speechService) UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) (models.Speech, error) {
	if err := s.speechRepository.UpdateSpeechStatus(ctx, uid, status); err != nil {
		return models.Speech{}, fmt.Errorf("error updating speech status: %w", err)
	}

	return s.speechRepository.GetSpeech(ctx, uid)
}

func (s *speechService) DeleteSpeech(ctx context.Context, uid uuid.UUID) error {
	if err := s.speechRepository.DeleteSpeech(ctx, uid); err != nil {
		return fmt.Errorf("error deleting speech: %w", err)
	}

	logger.FromContext(ctx).Info().Str("uid", uid.String()).Msg("speech deleted")
	return nil
}

// MediaURL presigns the media key of the speech. A disabled object store or
// a speech without media yields [ErrMediaUnavailable].
func (s *speechService) MediaURL(ctx context.Context, uid uuid.UUID) (*url.URL, error) {
	if !s.presigner.Enabled() {
		return nil, fmt.Errorf("%w: %w", ErrMediaUnavailable, media.ErrMediaDisabled)
	}

	speech, err := s.speechRepository.GetSpeech(ctx, uid)
	if err != nil {
		return nil, err
	}

	u, err := s.presigner.PresignedURL(ctx, speech.Media)
	if err != nil {
		if errors.Is(err, media.ErrEmptyKey) {
			return nil, fmt.Errorf("%w: %w", ErrMediaUnavailable, err)
		}
		return nil, err
	}

	return u, nil
}
