package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/service"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/internal/validators"
	"github.com/MKhiriev/speech-analytics/models"
)

type errorMapping struct {
	target error
	apiErr *apiError
	// keep the sentinel text as details
	specific bool
}

// errorTable is scanned in order; validation sentinels come before the
// generic service errors that wrap them.
var errorTable = []errorMapping{
	{target: validators.ErrInvalidUID, apiErr: errInvalidUID},
	{target: validators.ErrInvalidBirthDate, apiErr: errInvalidBirthDate, specific: true},
	{target: validators.ErrInvalidDate, apiErr: errInvalidDate},
	{target: validators.ErrInvalidSpeaker, apiErr: errInvalidSpeakersUID, specific: true},
	{target: validators.ErrDuplicateSpeaker, apiErr: errInvalidSpeakersUID, specific: true},
	{target: validators.ErrUnknownSentenceUser, apiErr: errInvalidSpeakersUID, specific: true},
	{target: validators.ErrInvalidStatus, apiErr: errInvalidStatus},
	{target: validators.ErrEmptyName, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrNameTooLong, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrEmptyFirstName, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrFirstNameTooLong, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrNoSpeakers, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrEmptySentence, apiErr: errInvalidFormat, specific: true},
	{target: validators.ErrMediaTooLong, apiErr: errInvalidFormat, specific: true},
	{target: service.ErrValidation, apiErr: errInvalidFormat},

	{target: service.ErrInvalidToken, apiErr: errInvalidToken},
	{target: service.ErrAccessDenied, apiErr: errAccessDenied},
	{target: service.ErrKeysUnavailable, apiErr: errInternal},
	{target: service.ErrMediaUnavailable, apiErr: errMediaUnavailable},
	{target: utils.ErrEmptyBody, apiErr: errInvalidFormat, specific: true},

	{target: store.ErrPersonNotFound, apiErr: errPersonNotFound},
	{target: store.ErrPersonAlreadyExists, apiErr: errPersonAlreadyExists},
	{target: store.ErrPersonInUse, apiErr: errPersonInUse},
	{target: store.ErrSpeechNotFound, apiErr: errSpeechNotFound},
	{target: store.ErrSpeechAlreadyExists, apiErr: errSpeechAlreadyExists},
	{target: store.ErrNotFound, apiErr: errNotFound},
	{target: store.ErrTimeout, apiErr: errRequestTimeout},
	{target: context.DeadlineExceeded, apiErr: errRequestTimeout},
}

// errorResponse converts err into the public error envelope.
func errorResponse(err error) models.ErrorResponse {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.response(apiErr.details)
	}

	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			details := m.apiErr.details
			if m.specific {
				details = m.target.Error()
			}
			return m.apiErr.response(details)
		}
	}

	return errInternal.response(errInternal.details)
}

func (e *apiError) response(details string) models.ErrorResponse {
	return models.ErrorResponse{
		Code:    e.status,
		Error:   e.kind,
		Details: details,
	}
}

// writeError logs err and answers with its envelope. Internal failures are
// logged as errors, client mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := errorResponse(err)

	if resp.Code >= http.StatusInternalServerError {
		log.Err(err).Str("kind", resp.Error).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", resp.Error).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, resp, resp.Code); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
