// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
)

// Orchestrator builds the entity validator of a request and runs it.
// It holds no per-call state and is safe for concurrent use.
type Orchestrator struct {
	lookups Lookups
	limits  Limits
	logger  *logger.Logger
}

// NewOrchestrator returns an orchestrator over the given collaborators.
func NewOrchestrator(lookups Lookups, limits Limits, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{lookups: lookups, limits: limits, logger: log}
}

// Validate runs the validator of req.Candidate and returns the violations.
// A non-nil error means validation was aborted and no result exists.
func (o *Orchestrator) Validate(ctx context.Context, req models.ValidationRequest) (*ErrorSink, error) {
	policy, err := PolicyFor(req.Scope.Version, o.limits)
	if err != nil {
		return nil, err
	}
	if req.Candidate == nil {
		return NewErrorSink(), nil
	}

	deps := Deps{
		Lookups:            o.lookups,
		Policy:             policy,
		Scope:              req.Scope,
		AvailableLanguages: req.AvailableLanguages,
	}
	v, err := o.NewValidator(req.Candidate, req.Current, deps)
	if err != nil {
		return nil, err
	}

	sink := NewErrorSink()
	if err = v.Validate(ctx, sink); err != nil {
		o.logger.Err(err).
			Str("entity", string(req.Entity)).
			Int("version", policy.Version).
			Msg("validation aborted")
		return nil, err
	}

	o.logger.Debug().
		Str("entity", string(req.Entity)).
		Str("validator", fmt.Sprintf("%T", v)).
		Int("version", policy.Version).
		Int("violations", sink.Len()).
		Msg("validation finished")
	return sink, nil
}

// NewValidator returns the entity validator matching the dynamic type of
// candidate. current must be nil or of the same type.
func (o *Orchestrator) NewValidator(candidate, current any, deps Deps) (Validator, error) {
	switch c := candidate.(type) {
	case *models.Service:
		cur, err := currentAs[*models.Service](current)
		if err != nil {
			return nil, err
		}
		v, err := NewServiceValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.Organization:
		cur, err := currentAs[*models.Organization](current)
		if err != nil {
			return nil, err
		}
		v, err := NewOrganizationValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.ElectronicChannel:
		cur, err := currentAs[*models.ElectronicChannel](current)
		if err != nil {
			return nil, err
		}
		v, err := NewElectronicChannelValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.PhoneChannel:
		cur, err := currentAs[*models.PhoneChannel](current)
		if err != nil {
			return nil, err
		}
		v, err := NewPhoneChannelValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.PrintableFormChannel:
		cur, err := currentAs[*models.PrintableFormChannel](current)
		if err != nil {
			return nil, err
		}
		v, err := NewPrintableFormChannelValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.ServiceLocationChannel:
		cur, err := currentAs[*models.ServiceLocationChannel](current)
		if err != nil {
			return nil, err
		}
		v, err := NewServiceLocationChannelValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.WebPageChannel:
		cur, err := currentAs[*models.WebPageChannel](current)
		if err != nil {
			return nil, err
		}
		v, err := NewWebPageChannelValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.ServiceCollection:
		cur, err := currentAs[*models.ServiceCollection](current)
		if err != nil {
			return nil, err
		}
		v, err := NewServiceCollectionValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.GeneralDescription:
		cur, err := currentAs[*models.GeneralDescription](current)
		if err != nil {
			return nil, err
		}
		v, err := NewGeneralDescriptionValidator(c, cur, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.ServiceConnections:
		v, err := NewServiceConnectionsValidator(c, deps)
		if err != nil {
			return nil, err
		}
		return v, nil

	case *models.ChannelConnections:
		v, err := NewChannelConnectionsValidator(c, deps)
		if err != nil {
			return nil, err
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, candidate)
}

func currentAs[T any](current any) (T, error) {
	var zero T
	if current == nil {
		return zero, nil
	}
	typed, ok := current.(T)
	if !ok {
		return zero, fmt.Errorf("%w: current version %T does not match the candidate", ErrUnsupportedType, current)
	}
	return typed, nil
}
