package adapter

import "errors"

var (
	ErrKeyNotFound    = errors.New("signing key not found")
	ErrFetchingKeys   = errors.New("error fetching signing keys")
	ErrDecodingKeySet = errors.New("error decoding key set")
	ErrNoSigningKeys  = errors.New("key set holds no RSA signing keys")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
