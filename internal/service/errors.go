package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidToken    = errors.New("invalid token")
	ErrKeysUnavailable = errors.New("signing keys are unavailable")
	ErrAccessDenied    = errors.New("access denied")

	ErrValidation = errors.New("validation failed")

	ErrMediaUnavailable = errors.New("media is unavailable")
)
