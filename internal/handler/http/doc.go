// Package http implements the REST transport of the speech analytics API.
//
// All routes live under /api. Requests pass through recovery, tracing,
// access logging, CORS, compression and a request deadline before the
// bearer token is verified and the per-route permission is checked.
// Failures are rendered as the JSON envelope of [models.ErrorResponse].
package http
