package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

// speechDateLayouts are tried in order when parsing a speech date. Values
// without a zone are taken as UTC.
var speechDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func (h *Handler) createSpeech(w http.ResponseWriter, r *http.Request) {
	var input models.SpeechInput
	if err := utils.ReadJSON(r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidFormat, err))
		return
	}

	speech, err := speechFromInput(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.SpeechService.CreateSpeech(r.Context(), speech)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.CreatedResponse{UID: created.UID}, http.StatusCreated)
}

func (h *Handler) listSpeeches(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSpeechFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	speeches, err := h.services.SpeechService.ListSpeeches(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	summaries := make([]models.SpeechSummary, 0, len(speeches))
	for _, speech := range speeches {
		summaries = append(summaries, speech.Summary())
	}

	respond(w, r, summaries, http.StatusOK)
}

func (h *Handler) getSpeech(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	speech, err := h.services.SpeechService.GetSpeech(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, withSentences(speech), http.StatusOK)
}

func (h *Handler) updateSpeechStatus(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.SpeechStatusInput
	if err = utils.ReadJSON(r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidFormat, err))
		return
	}

	status := models.SpeechStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	if !status.Valid() {
		writeError(w, r, errInvalidStatus)
		return
	}

	speech, err := h.services.SpeechService.UpdateSpeechStatus(r.Context(), uid, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, withSentences(speech), http.StatusOK)
}

// speechMedia redirects to a presigned URL of the speech recording.
func (h *Handler) speechMedia(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.services.SpeechService.MediaURL(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, u.String(), http.StatusTemporaryRedirect)
}

func (h *Handler) deleteSpeech(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SpeechService.DeleteSpeech(r.Context(), uid); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func speechFromInput(input models.SpeechInput) (models.Speech, error) {
	date, err := parseSpeechDate(input.Date)
	if err != nil {
		return models.Speech{}, err
	}

	speakers := make([]uuid.UUID, 0, len(input.Speakers))
	for _, raw := range input.Speakers {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return models.Speech{}, fmt.Errorf("%w: %w", errInvalidSpeakersUID, err)
		}
		speakers = append(speakers, uid)
	}

	sentences := make([]models.Sentence, 0, len(input.Sentences))
	for _, s := range input.Sentences {
		speaker, err := uuid.Parse(s.Speaker)
		if err != nil {
			return models.Speech{}, fmt.Errorf("%w: %w", errInvalidSpeakersUID, err)
		}
		sentences = append(sentences, models.Sentence{
			Speaker:     speaker,
			Text:        s.Text,
			Interrupted: s.Interrupted,
		})
	}

	return models.Speech{
		Name:      input.Name,
		Date:      date,
		Speakers:  speakers,
		Sentences: sentences,
		Media:     input.Media,
	}, nil
}

func parseSpeechDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range speechDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDate
}

// withSentences makes sure a speech is rendered with a sentences array,
// empty or not.
func withSentences(speech models.Speech) models.Speech {
	if speech.Sentences == nil {
		speech.Sentences = []models.Sentence{}
	}
	return speech
}
