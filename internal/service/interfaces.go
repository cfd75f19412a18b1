package service

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/internal/validators"
	"github.com/MKhiriev/go-registry-validator/models"
)

// ValidationService decodes incoming validation calls and runs them through
// the validation engine.
type ValidationService interface {
	// Validate returns the outcome of call. A non-nil error means the call
	// could not be validated at all; violations are reported in the result.
	Validate(ctx context.Context, call models.ValidationCall) (models.ValidationResult, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Engine runs one decoded validation request.
// [validators.Orchestrator] is the production implementation.
type Engine interface {
	Validate(ctx context.Context, req models.ValidationRequest) (*validators.ErrorSink, error)
}

// ValidationServiceWrapper defines middleware composition for ValidationService.
// Implementations wrap an existing ValidationService to add behavior such as
// logging.
type ValidationServiceWrapper interface {
	Wrap(ValidationService) ValidationService // returns a decorated ValidationService applying additional behavior
}
