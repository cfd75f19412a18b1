package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("taxonomy service rejected the request")
	ErrUnauthorized        = errors.New("taxonomy service unauthorized")
	ErrNotFound            = errors.New("taxonomy resource not found")
	ErrBadGateway          = errors.New("taxonomy service bad gateway")
	ErrInternalServerError = errors.New("taxonomy service internal error")
	ErrUnavailable         = errors.New("taxonomy service unavailable")
)
