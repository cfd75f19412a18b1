package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownEntity    = errors.New("unknown entity type")
	ErrInvalidCandidate = errors.New("candidate document cannot be decoded")
	ErrInvalidCurrent   = errors.New("current document cannot be decoded")
	ErrInvalidScope     = errors.New("invalid user scope")
)
