// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Permission is an action a caller may perform on the API.
type Permission string

// Permissions granted by the identity provider.
const (
	PermissionGetSpeech    Permission = "GetSpeech"
	PermissionCreateSpeech Permission = "CreateSpeech"
	PermissionDeleteSpeech Permission = "DeleteSpeech"
	PermissionUpdateSpeech Permission = "UpdateSpeech"
	PermissionGetPerson    Permission = "GetPerson"
	PermissionCreatePerson Permission = "CreatePerson"
	PermissionUpdatePerson Permission = "UpdatePerson"
	PermissionDeletePerson Permission = "DeletePerson"
)

var knownPermissions = []Permission{
	PermissionGetSpeech,
	PermissionCreateSpeech,
	PermissionDeleteSpeech,
	PermissionUpdateSpeech,
	PermissionGetPerson,
	PermissionCreatePerson,
	PermissionUpdatePerson,
	PermissionDeletePerson,
}

// ParsePermission returns the permission named s and false when s is not a
// known permission.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	return p, slices.Contains(knownPermissions, p)
}

const (
	anonymousUserID   = "anonymous"
	anonymousUsername = "Unknown_user"
)

// AuthToken is the verified identity of a caller.
//
// Requests without credentials receive [AnonymousToken].
type AuthToken struct {
	UserID      string
	Username    string
	Permissions []Permission
}

// AnonymousToken returns the identity of an unauthenticated caller, allowed
// to read persons and speeches.
func AnonymousToken() AuthToken {
	return AuthToken{
		UserID:      anonymousUserID,
		Username:    anonymousUsername,
		Permissions: []Permission{PermissionGetPerson, PermissionGetSpeech},
	}
}

// Has reports whether the token grants p.
func (t AuthToken) Has(p Permission) bool {
	return slices.Contains(t.Permissions, p)
}

// IsAnonymous reports whether the token belongs to an unauthenticated caller.
func (t AuthToken) IsAnonymous() bool {
	return t.UserID == anonymousUserID
}
