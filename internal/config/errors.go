package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a required
// configuration group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates a taxonomy URL without a timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidValidationConfigs indicates non-positive limits or an
	// unsupported default API version.
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidWorkerConfigs indicates a zero refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
