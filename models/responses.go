package models

import "github.com/google/uuid"

// ErrorResponse is the JSON envelope of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

// CreatedResponse is returned when a resource is created.
type CreatedResponse struct {
	UID uuid.UUID `json:"uid"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
