// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the registry
// validator depends on.
//
// The taxonomy service owns the controlled vocabularies (service classes,
// ontology terms, life events, industrial classes and target groups). When it
// is configured, [NewHTTPTaxonomyAdapter] replaces the database-backed
// taxonomy lookup of the validation engine.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on them.
package adapter

import "github.com/MKhiriev/go-registry-validator/internal/validators"

// TaxonomyAdapter resolves vocabulary terms through a remote service.
type TaxonomyAdapter interface {
	validators.TaxonomyLookup
}
