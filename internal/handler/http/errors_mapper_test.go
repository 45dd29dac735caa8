package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/speech-analytics/internal/service"
	"github.com/MKhiriev/speech-analytics/internal/store"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantKind    string
		wantDetails string
	}{
		{
			name:     "api error",
			err:      errInvalidRoute,
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidRoute",
		},
		{
			name:     "wrapped api error",
			err:      fmt.Errorf("%w: unexpected EOF", errInvalidFormat),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidFormat",
		},
		{
			name:        "birth date validation",
			err:         fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidBirthDate),
			wantCode:    http.StatusBadRequest,
			wantKind:    "InvalidBirthDate",
			wantDetails: validators.ErrInvalidBirthDate.Error(),
		},
		{
			name:        "missing name",
			err:         fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyName),
			wantCode:    http.StatusBadRequest,
			wantKind:    "InvalidFormat",
			wantDetails: validators.ErrEmptyName.Error(),
		},
		{
			name:     "uid validation",
			err:      fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidUID),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidUID",
		},
		{
			name:     "invalid token",
			err:      fmt.Errorf("%w: token is expired", service.ErrInvalidToken),
			wantCode: http.StatusBadRequest,
			wantKind: "InvalidToken",
		},
		{
			name:     "access denied",
			err:      fmt.Errorf("%w: speech:delete", service.ErrAccessDenied),
			wantCode: http.StatusForbidden,
			wantKind: "AccessDenied",
		},
		{
			name:     "keys unavailable",
			err:      service.ErrKeysUnavailable,
			wantCode: http.StatusInternalServerError,
			wantKind: "InternalError",
		},
		{
			name:        "empty body",
			err:         utils.ErrEmptyBody,
			wantCode:    http.StatusBadRequest,
			wantKind:    "InvalidFormat",
			wantDetails: utils.ErrEmptyBody.Error(),
		},
		{
			name:     "person in use",
			err:      fmt.Errorf("error deleting person: %w", store.ErrPersonInUse),
			wantCode: http.StatusConflict,
			wantKind: "PersonInUse",
		},
		{
			name:     "database timeout",
			err:      store.ErrTimeout,
			wantCode: http.StatusServiceUnavailable,
			wantKind: "RequestTimeout",
		},
		{
			name:     "request deadline",
			err:      fmt.Errorf("querying: %w", context.DeadlineExceeded),
			wantCode: http.StatusServiceUnavailable,
			wantKind: "RequestTimeout",
		},
		{
			name:     "unknown",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
			wantKind: "InternalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := errorResponse(tt.err)

			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantKind, resp.Error)
			assert.NotEmpty(t, resp.Details)
			if tt.wantDetails != "" {
				assert.Equal(t, tt.wantDetails, resp.Details)
			}
		})
	}
}

func TestErrorTable_ValidationBeforeGeneric(t *testing.T) {
	index := func(target error) int {
		for i, m := range errorTable {
			if m.target == target {
				return i
			}
		}
		return -1
	}

	generic := index(service.ErrValidation)
	assert.NotEqual(t, -1, generic)

	for _, sentinel := range []error{
		validators.ErrInvalidUID,
		validators.ErrInvalidBirthDate,
		validators.ErrInvalidDate,
		validators.ErrUnknownSentenceUser,
		validators.ErrInvalidStatus,
		validators.ErrNoSpeakers,
	} {
		i := index(sentinel)
		assert.NotEqual(t, -1, i, sentinel.Error())
		assert.Less(t, i, generic, sentinel.Error())
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/person", nil)

	writeError(rec, req, store.ErrPersonNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"code":404,"error":"PersonNotFound","details":"The person requested is not found"}`,
		rec.Body.String())
}
