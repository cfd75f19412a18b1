package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server closed through Shutdown returns nil.
	RunServer() error

	// Shutdown gracefully stops the server. When ctx expires before in-flight
	// requests finish the remaining connections are closed forcibly.
	Shutdown(ctx context.Context) error
}

var (
	_ Server = (*httpServer)(nil)
	_ Server = (*grpcServer)(nil)
)
