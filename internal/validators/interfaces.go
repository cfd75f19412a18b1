// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the validation engine of the service
// registry.
//
// Core concepts:
//   - Validator: one rule or rule tree. Validate records business-rule
//     violations in an ErrorSink and returns a non-nil error only for fatal
//     contract failures (malformed enums, missing dependencies, failed lookups).
//   - ErrorSink: the field-addressed accumulator of violation messages.
//   - Lookups: the capability bundle of read-only collaborators (codes,
//     organizations, taxonomy, channels, services, general descriptions).
//   - Policy: the version-gated rule switches resolved once per call.
//
// Every validator treats a nil model as valid and performs no lookups for it.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/lookups_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
)

// CodeLookup resolves the code tables of the registry.
type CodeLookup interface {
	CountryExists(ctx context.Context, code string) (bool, error)
	MunicipalityExists(ctx context.Context, code string) (bool, error)
	PostalCodeExists(ctx context.Context, code string) (bool, error)
	DialCodeExists(ctx context.Context, code string) (bool, error)
	LanguageExists(ctx context.Context, code string) (bool, error)

	// AreaCodeExists resolves province, business region and hospital region codes.
	AreaCodeExists(ctx context.Context, areaType models.AreaType, code string) (bool, error)
}

// OrganizationLookup resolves organizations.
type OrganizationLookup interface {
	OrganizationExists(ctx context.Context, id uuid.UUID) (bool, error)

	// UserOrganizationLanguages returns the languages the user may use for
	// organizationID. userOrganizationIDs is nil for administrators. An
	// error means the organization is not one of the user's organizations.
	UserOrganizationLanguages(ctx context.Context, organizationID uuid.UUID, userOrganizationIDs []uuid.UUID) ([]string, error)
}

// TaxonomyLookup resolves the controlled vocabularies.
type TaxonomyLookup interface {
	// NotExistingURIs returns the subset of uris unknown in the vocabulary.
	NotExistingURIs(ctx context.Context, kind models.TaxonomyKind, uris []string) ([]string, error)

	// TaxonomyItem returns nil when uri is unknown.
	TaxonomyItem(ctx context.Context, kind models.TaxonomyKind, uri string) (*models.TaxonomyItem, error)

	// TaxonomyItemByID returns nil when id is unknown.
	TaxonomyItemByID(ctx context.Context, kind models.TaxonomyKind, id uuid.UUID) (*models.TaxonomyItem, error)

	// MainServiceClasses returns the subset of uris that are top-level classes.
	MainServiceClasses(ctx context.Context, uris []string) ([]string, error)
}

// ChannelLookup resolves persisted service channels.
type ChannelLookup interface {
	NotExistingChannels(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	// ChannelInfo returns nil when the channel does not exist.
	ChannelInfo(ctx context.Context, id uuid.UUID) (*models.ChannelInfo, error)
}

// ServiceLookup resolves persisted services.
type ServiceLookup interface {
	NotExistingServices(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// GeneralDescriptionLookup resolves persisted general descriptions.
type GeneralDescriptionLookup interface {
	// GeneralDescription returns nil when the description does not exist.
	GeneralDescription(ctx context.Context, id uuid.UUID) (*models.GeneralDescriptionInfo, error)
}
