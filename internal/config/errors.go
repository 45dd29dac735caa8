package config

import "errors"

// Errors returned while loading configuration sources.
var (
	ErrLoadingEnvFile     = errors.New("error loading env file")
	ErrParsingFlags       = errors.New("error parsing flags")
	ErrReadingConfigFile  = errors.New("error reading config file")
	ErrDecodingConfigFile = errors.New("error decoding config file")
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingDatabaseURL is returned when DATABASE_URL is not set by any
	// source.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	// ErrMissingKeycloakCertsURL is returned when KEYCLOAK_CERTS_URL is not
	// set by any source.
	ErrMissingKeycloakCertsURL = errors.New("KEYCLOAK_CERTS_URL is not set")
	// ErrInvalidKeycloakConfigs indicates a malformed certs URL or a
	// non-positive key TTL.
	ErrInvalidKeycloakConfigs = errors.New("invalid keycloak configuration")
	ErrInvalidServerConfigs   = errors.New("invalid server configuration")
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")
	ErrInvalidCacheConfigs    = errors.New("invalid cache configuration")
	// ErrInvalidMediaConfigs indicates that only some of the object store
	// connection fields are set.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
	ErrInvalidLogConfigs   = errors.New("invalid log configuration")
)
