// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ScopeCtxKey is the key the authenticated user scope is stored under.
var ScopeCtxKey = contextKey("scope")

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope models.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey, scope)
}

// GetScopeFromContext retrieves the user scope from the context.
//
// Returns ok == false when no scope was stored or the value has an
// unexpected type.
//
// Example usage:
//
//	scope, ok := utils.GetScopeFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetScopeFromContext(ctx context.Context) (models.Scope, bool) {
	scope, ok := ctx.Value(ScopeCtxKey).(models.Scope)
	return scope, ok
}
