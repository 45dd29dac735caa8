// Package workers runs the periodic background jobs of the server: the
// signing keys refresher, the cache janitor and the gRPC health prober.
// Every worker runs until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Prober publishes the current health status. Implemented by the gRPC
// handler.
type Prober interface {
	Probe(ctx context.Context)
}
