package server

import "context"

// Server is the lifecycle contract of a transport managed by this package.
type Server interface {
	// RunServer serves requests and blocks until the server stops. A
	// stop caused by Shutdown is not an error.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}

// Runner is a set of background jobs bound to the server lifetime.
type Runner interface {
	Run(ctx context.Context)
}
