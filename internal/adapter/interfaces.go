// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients of the external services the speech
// analytics server depends on.
//
// The primary abstraction is [KeyProvider], which hides the identity
// provider's JWKS endpoint from the service layer. The package ships a
// Keycloak implementation ([NewKeycloakKeyProvider]) built on resty.
//
// HTTP status codes returned by remote services are mapped to the sentinel
// values in errors.go by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"
	"crypto/rsa"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// KeyProvider serves the RSA public keys that sign access tokens.
type KeyProvider interface {
	// Key returns the public key identified by kid. Unknown kids trigger at
	// most one forced refresh per rate limit window before [ErrKeyNotFound]
	// is returned.
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)

	// Refresh downloads the key set unconditionally. Concurrent calls share
	// one request.
	Refresh(ctx context.Context) error

	// Status describes the cached key set.
	Status() KeySetStatus
}

// KeySetStatus is a snapshot of the cached key set.
type KeySetStatus struct {
	Keys      int
	FetchedAt time.Time
	ExpiresAt time.Time
}

// Loaded reports whether at least one key was fetched.
func (s KeySetStatus) Loaded() bool {
	return s.Keys > 0
}
