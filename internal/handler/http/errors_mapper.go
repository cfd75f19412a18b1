package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-registry-validator/internal/service"
	"github.com/MKhiriev/go-registry-validator/internal/validators"
)

// errorStatuses is checked in order; the first match wins. Lookup failures
// come first because they wrap storage and adapter errors.
var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrLookupFailed, http.StatusBadGateway},

	{ErrInvalidAPIVersion, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrMissingScope, http.StatusUnauthorized},

	{service.ErrUnknownEntity, http.StatusBadRequest},
	{service.ErrInvalidCandidate, http.StatusBadRequest},
	{service.ErrInvalidCurrent, http.StatusBadRequest},
	{service.ErrInvalidScope, http.StatusForbidden},

	{validators.ErrUnsupportedVersion, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusBadRequest},
	{validators.ErrInvalidPublishingStatus, http.StatusBadRequest},
	{validators.ErrInvalidAreaType, http.StatusBadRequest},
	{validators.ErrConflictingLanguageModes, http.StatusInternalServerError},
	{validators.ErrMissingDependency, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
