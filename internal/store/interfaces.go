package store

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/internal/validators"
)

// ErrorClassificator decides whether a failed query may be repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CodeRepository is the persisted code tables. Besides the single-code
// lookups it can dump every table for [CodeCache].
type CodeRepository interface {
	validators.CodeLookup

	// AllCodes returns every code grouped by its kind.
	AllCodes(ctx context.Context) (map[CodeKind][]string, error)
}

// TaxonomyRepository resolves the controlled vocabularies.
type TaxonomyRepository interface {
	validators.TaxonomyLookup
}

// OrganizationRepository resolves organizations and their languages.
type OrganizationRepository interface {
	validators.OrganizationLookup
}

// ChannelRepository resolves persisted service channels.
type ChannelRepository interface {
	validators.ChannelLookup
}

// ServiceRepository resolves persisted services.
type ServiceRepository interface {
	validators.ServiceLookup
}

// GeneralDescriptionRepository resolves persisted general descriptions.
type GeneralDescriptionRepository interface {
	validators.GeneralDescriptionLookup
}
