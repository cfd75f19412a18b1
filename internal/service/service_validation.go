package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
)

// validationService is the concrete implementation of ValidationService.
// It turns raw JSON documents into entity models and hands them to the engine.
type validationService struct {
	engine Engine

	// defaultVersion is used when the caller did not name an API version.
	defaultVersion int

	logger *logger.Logger
}

// NewValidationService constructs a ValidationService over engine. Calls
// without a version are validated against cfg.DefaultVersion.
func NewValidationService(engine Engine, cfg config.Validation, logger *logger.Logger) ValidationService {
	return &validationService{
		engine:         engine,
		defaultVersion: cfg.DefaultVersion,
		logger:         logger,
	}
}

// Validate decodes call and validates it.
//
// Returns:
//   - ErrUnknownEntity if call.Entity names no known entity type.
//   - ErrInvalidCandidate / ErrInvalidCurrent if a document is not valid JSON
//     for the entity type.
//   - ErrInvalidScope if an organization user has no organizations.
//   - Engine errors (unsupported version, lookup failures, ...) unchanged.
func (s *validationService) Validate(ctx context.Context, call models.ValidationCall) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)

	entity, err := models.ParseEntityType(call.Entity)
	if err != nil {
		log.Err(err).Str("entity", call.Entity).Msg("unknown entity type")
		return models.ValidationResult{}, fmt.Errorf("%w: %s", ErrUnknownEntity, call.Entity)
	}

	scope := call.Scope
	if scope.Version == 0 {
		scope.Version = s.defaultVersion
	}
	if !scope.IsAdmin() && len(scope.OrganizationIDs) == 0 {
		log.Error().Str("role", string(scope.Role)).Msg("user has no organizations")
		return models.ValidationResult{}, fmt.Errorf("%w: role %s requires at least one organization", ErrInvalidScope, scope.Role)
	}

	candidate, current := entity.NewCandidate()

	req := models.ValidationRequest{
		Entity:             entity,
		Scope:              scope,
		AvailableLanguages: call.AvailableLanguages,
	}
	if req.Candidate, err = decodeDocument(call.Candidate, candidate); err != nil {
		log.Err(err).Str("entity", string(entity)).Msg("candidate cannot be decoded")
		return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrInvalidCandidate, err)
	}
	if current != nil {
		if req.Current, err = decodeDocument(call.Current, current); err != nil {
			log.Err(err).Str("entity", string(entity)).Msg("current cannot be decoded")
			return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrInvalidCurrent, err)
		}
	}

	sink, err := s.engine.Validate(ctx, req)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("validation of %s aborted: %w", entity, err)
	}

	return models.ValidationResult{Valid: sink.IsValid(), Errors: sink.Errors()}, nil
}

// decodeDocument unmarshals raw into target. An absent or null document
// yields an untyped nil so the engine sees no model at all.
func decodeDocument(raw json.RawMessage, target any) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if err := json.Unmarshal(trimmed, target); err != nil {
		return nil, err
	}
	return target, nil
}
