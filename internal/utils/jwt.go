package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned for headers that are not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrMissingKeyID is returned when a token header carries no "kid".
	ErrMissingKeyID = errors.New("token header has no key id")
)

// ParseBearerToken extracts the raw token from an Authorization header.
// The scheme is matched case-insensitively.
//
// Example usage:
//
//	raw, err := utils.ParseBearerToken("Bearer eyJhbGciOi...")
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// KeyID returns the "kid" header of a parsed token.
func KeyID(token *jwt.Token) (string, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return "", ErrMissingKeyID
	}
	return kid, nil
}

// ClaimsJSON renders the token's claims back to JSON so they can be
// queried by path.
func ClaimsJSON(token *jwt.Token) ([]byte, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error encoding token claims: %w", err)
	}
	return raw, nil
}
