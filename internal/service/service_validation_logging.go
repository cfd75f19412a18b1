package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
)

// ValidationLoggingService records the outcome of every validation call.
type ValidationLoggingService struct {
	inner ValidationService
}

// NewValidationLoggingService returns a wrapper that logs around the
// ValidationService passed to Wrap.
func NewValidationLoggingService() ValidationServiceWrapper {
	return &ValidationLoggingService{}
}

func (v *ValidationLoggingService) Validate(ctx context.Context, call models.ValidationCall) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	result, err := v.inner.Validate(ctx, call)
	if err != nil {
		log.Err(err).
			Str("entity", call.Entity).
			Int("version", call.Scope.Version).
			Str("role", string(call.Scope.Role)).
			Dur("duration", time.Since(start)).
			Msg("validation failed")
		return result, err
	}

	log.Info().
		Str("entity", call.Entity).
		Int("version", call.Scope.Version).
		Str("role", string(call.Scope.Role)).
		Bool("valid", result.Valid).
		Int("violations", len(result.Errors)).
		Dur("duration", time.Since(start)).
		Msg("validation finished")
	return result, nil
}

func (v *ValidationLoggingService) Wrap(wrapped ValidationService) ValidationService {
	v.inner = wrapped
	return v
}
