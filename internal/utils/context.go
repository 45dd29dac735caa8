// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, bearer token
// parsing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/speech-analytics/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// AuthTokenCtxKey is the key under which the auth middleware stores the
	// caller's [models.AuthToken].
	AuthTokenCtxKey = contextKey("authToken")
	// TraceIDCtxKey is the key of the request trace identifier.
	TraceIDCtxKey = contextKey("traceID")
)

// WithAuthToken returns a copy of ctx carrying token.
func WithAuthToken(ctx context.Context, token models.AuthToken) context.Context {
	return context.WithValue(ctx, AuthTokenCtxKey, token)
}

// GetAuthTokenFromContext retrieves the caller's token from the context.
//
// Returns the token and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetAuthTokenFromContext(ctx context.Context) (models.AuthToken, bool) {
	token, ok := ctx.Value(AuthTokenCtxKey).(models.AuthToken)
	return token, ok
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
