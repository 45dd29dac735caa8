package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validSpeech() models.Speech {
	speaker := uuid.New()
	return models.Speech{
		UID:      uuid.New(),
		Name:     "Nobel lecture",
		Date:     time.Date(1911, 12, 11, 10, 0, 0, 0, time.UTC),
		Speakers: []uuid.UUID{speaker},
		Sentences: []models.Sentence{
			{UID: uuid.New(), Speaker: speaker, Text: "Some years ago"},
		},
		Status: models.SpeechStatusPending,
	}
}

func TestSpeechValidator_Dispatch(t *testing.T) {
	v := NewSpeechValidator()
	speech := validSpeech()

	assert.NoError(t, v.Validate(context.Background(), speech))
	assert.NoError(t, v.Validate(context.Background(), &speech))
	assert.NoError(t, v.Validate(context.Background(), models.SpeechStatusValidated))
	assert.ErrorIs(t, v.Validate(context.Background(), models.SpeechStatus("DONE")), ErrInvalidStatus)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), speech, "speaker"), ErrUnknownField)
}

func TestSpeechValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Speech)
		wantErr error
	}{
		{name: "valid without sentences", mutate: func(s *models.Speech) { s.Sentences = nil }},
		{name: "nil uid", mutate: func(s *models.Speech) { s.UID = uuid.Nil }, wantErr: ErrInvalidUID},
		{name: "empty name", mutate: func(s *models.Speech) { s.Name = " " }, wantErr: ErrEmptyName},
		{name: "zero date", mutate: func(s *models.Speech) { s.Date = time.Time{} }, wantErr: ErrInvalidDate},
		{name: "no speakers", mutate: func(s *models.Speech) { s.Speakers = nil; s.Sentences = nil }, wantErr: ErrNoSpeakers},
		{name: "nil speaker", mutate: func(s *models.Speech) { s.Speakers = append(s.Speakers, uuid.Nil) }, wantErr: ErrInvalidSpeaker},
		{name: "duplicate speaker", mutate: func(s *models.Speech) { s.Speakers = append(s.Speakers, s.Speakers[0]) }, wantErr: ErrDuplicateSpeaker},
		{name: "sentence by a stranger", mutate: func(s *models.Speech) { s.Sentences[0].Speaker = uuid.New() }, wantErr: ErrUnknownSentenceUser},
		{name: "empty sentence", mutate: func(s *models.Speech) { s.Sentences[0].Text = "" }, wantErr: ErrEmptySentence},
		{name: "long media", mutate: func(s *models.Speech) { s.Media = strings.Repeat("m", maxMediaLength+1) }, wantErr: ErrMediaTooLong},
		{name: "unknown status", mutate: func(s *models.Speech) { s.Status = "pending" }, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speech := validSpeech()
			tt.mutate(&speech)

			err := NewSpeechValidator().Validate(context.Background(), speech)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
