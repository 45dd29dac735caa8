// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the business rules on persons and speeches
// before they reach storage.
//
// A [Validator] checks either the whole value or only the named fields, so
// an update can be checked field by field while a create checks everything
// the store requires. Field names are the Field* constants. Errors are the
// sentinels of errors.go; the service layer wraps them so the HTTP layer can
// pick a precise error kind.
package validators

import "context"

// Validator is implemented by [PersonValidator] and [SpeechValidator].
type Validator interface {
	// Validate checks value. With no fields every rule applies; otherwise
	// only the rules of the named fields run, in order, and the first
	// failure is returned.
	Validate(ctx context.Context, value any, fields ...string) error
}
