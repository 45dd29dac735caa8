// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// apiError is a failure kind exposed to API clients.
type apiError struct {
	status  int
	kind    string
	details string
}

func (e *apiError) Error() string {
	return e.kind + ": " + e.details
}

var (
	errInvalidRoute = &apiError{http.StatusBadRequest, "InvalidRoute", "The route format seems invalid"}
	errNotFound     = &apiError{http.StatusNotFound, "NotFound", "The requested resource is not found"}
	errInvalidToken = &apiError{http.StatusBadRequest, "InvalidToken", "The token you provided is invalid"}
	errAccessDenied = &apiError{http.StatusForbidden, "AccessDenied", "You cannot access this resource"}

	errInvalidFormat        = &apiError{http.StatusBadRequest, "InvalidFormat", "The body format is invalid"}
	errInvalidBirthDate     = &apiError{http.StatusBadRequest, "InvalidBirthDate", "The birth date supplied has an invalid format"}
	errInvalidDate          = &apiError{http.StatusBadRequest, "InvalidDate", "The date provided is invalid, an ISO 8601 date is expected"}
	errInvalidUID           = &apiError{http.StatusBadRequest, "InvalidUID", "The uid provided is not a valid UUID"}
	errInvalidSpeakersUID   = &apiError{http.StatusBadRequest, "InvalidSpeakersUid", "One of the speaker uids provided has an invalid format"}
	errInvalidPageParam     = &apiError{http.StatusBadRequest, "InvalidPageParam", "The page parameter must be an integer between 0 and 65535"}
	errInvalidQuantityParam = &apiError{http.StatusBadRequest, "InvalidQuantityParam", "The quantity parameter must be an integer between 1 and 65535"}
	errInvalidArrayParam    = &apiError{http.StatusBadRequest, "InvalidArrayParam", "The array query parameter has an invalid format"}
	errInvalidStatus        = &apiError{http.StatusBadRequest, "InvalidStatus", "The status must be PENDING or VALIDATED"}

	errPersonNotFound      = &apiError{http.StatusNotFound, "PersonNotFound", "The person requested is not found"}
	errPersonAlreadyExists = &apiError{http.StatusConflict, "PersonAlreadyExists", "The person already exists"}
	errPersonInUse         = &apiError{http.StatusConflict, "PersonInUse", "The person still speaks in a stored speech"}
	errSpeechNotFound      = &apiError{http.StatusNotFound, "SpeechNotFound", "The speech requested is not found"}
	errSpeechAlreadyExists = &apiError{http.StatusConflict, "SpeechAlreadyExists", "The speech already exists"}
	errMediaUnavailable    = &apiError{http.StatusNotFound, "MediaUnavailable", "No media is available for this speech"}

	errInternal       = &apiError{http.StatusInternalServerError, "InternalError", "An internal error occurred, please contact our technical service"}
	errRequestTimeout = &apiError{http.StatusServiceUnavailable, "RequestTimeout", "The request took too long, please retry later"}
)
