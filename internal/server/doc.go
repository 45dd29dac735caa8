// Package server runs the transport servers and the background workers
// of the speech analytics API.
//
// Listeners are opened when the server is created so that a busy port is
// reported at startup. Run blocks until its context is cancelled, then stops
// the transports within the configured shutdown timeout.
package server
