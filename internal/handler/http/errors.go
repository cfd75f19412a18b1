// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenIsExpired is returned when the bearer token is past its expiry.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("token is invalid")
)

// Request errors of the validation endpoint.
var (
	ErrInvalidAPIVersion = errors.New("invalid api version in path")
	ErrMissingScope      = errors.New("request carries no user scope")
	ErrInvalidBody       = errors.New("request body is not a validation request")
)
