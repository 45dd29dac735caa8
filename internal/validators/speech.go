package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

// Field names accepted by [SpeechValidator] in addition to [FieldUID] and
// [FieldName].
const (
	FieldDate      = "date"
	FieldSpeakers  = "speakers"
	FieldSentences = "sentences"
	FieldMedia     = "media"
	FieldStatus    = "status"
)

const maxMediaLength = 1024

type SpeechValidator struct{}

func NewSpeechValidator() Validator {
	return &SpeechValidator{}
}

func (v *SpeechValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Speech:
		return v.validateSpeech(ctx, value, fields...)
	case *models.Speech:
		return v.validateSpeech(ctx, *value, fields...)
	case models.SpeechStatus:
		return v.validateSpeech(ctx, models.Speech{Status: value}, FieldStatus)
	default:
		return ErrUnsupportedType
	}
}

func (v *SpeechValidator) validateSpeech(_ context.Context, speech models.Speech, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldName, FieldDate, FieldSpeakers, FieldSentences, FieldMedia, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUID:
			if speech.UID == uuid.Nil {
				return ErrInvalidUID
			}
		case FieldName:
			if strings.TrimSpace(speech.Name) == "" {
				return ErrEmptyName
			}
		case FieldDate:
			if speech.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldSpeakers:
			if err := validateSpeakers(speech.Speakers); err != nil {
				return err
			}
		case FieldSentences:
			if err := validateSentences(speech.Speakers, speech.Sentences); err != nil {
				return err
			}
		case FieldMedia:
			if len(speech.Media) > maxMediaLength {
				return ErrMediaTooLong
			}
		case FieldStatus:
			if !speech.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSpeakers(speakers []uuid.UUID) error {
	if len(speakers) == 0 {
		return ErrNoSpeakers
	}

	seen := make(map[uuid.UUID]struct{}, len(speakers))
	for _, speaker := range speakers {
		if speaker == uuid.Nil {
			return ErrInvalidSpeaker
		}
		if _, ok := seen[speaker]; ok {
			return ErrDuplicateSpeaker
		}
		seen[speaker] = struct{}{}
	}
	return nil
}

// validateSentences checks that every sentence is said by a listed speaker.
func validateSentences(speakers []uuid.UUID, sentences []models.Sentence) error {
	listed := make(map[uuid.UUID]struct{}, len(speakers))
	for _, speaker := range speakers {
		listed[speaker] = struct{}{}
	}

	for _, sentence := range sentences {
		if _, ok := listed[sentence.Speaker]; !ok {
			return ErrUnknownSentenceUser
		}
		if strings.TrimSpace(sentence.Text) == "" {
			return ErrEmptySentence
		}
	}
	return nil
}
