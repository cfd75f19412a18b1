package validators

import "errors"

var (
	ErrInvalidPublishingStatus  = errors.New("invalid publishing status")
	ErrMissingDependency        = errors.New("validator dependency is missing")
	ErrInvalidAreaType          = errors.New("invalid area type")
	ErrUnsupportedVersion       = errors.New("unsupported api version")
	ErrUnsupportedType          = errors.New("unsupported type for validation")
	ErrLookupFailed             = errors.New("lookup failed")
	ErrConflictingLanguageModes = errors.New("required and available languages cannot be combined")
)
