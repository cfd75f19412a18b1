// Package server owns the listeners of the validator: the HTTP validation
// API and the gRPC health service. Both run until the process context is
// cancelled and are then drained within a shared shutdown deadline.
package server
