package store

import (
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/validators"
)

// Repositories bundles the SQL lookup repositories of one database.
type Repositories struct {
	Codes               CodeRepository
	Taxonomy            TaxonomyRepository
	Organizations       OrganizationRepository
	Channels            ChannelRepository
	Services            ServiceRepository
	GeneralDescriptions GeneralDescriptionRepository
}

// NewRepositories constructs every lookup repository over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Codes:               NewCodeRepository(db, log),
		Taxonomy:            NewTaxonomyRepository(db, log),
		Organizations:       NewOrganizationRepository(db, log),
		Channels:            NewChannelRepository(db, log),
		Services:            NewServiceRepository(db, log),
		GeneralDescriptions: NewGeneralDescriptionRepository(db, log),
	}
}

// Lookups returns the repositories as the engine's capability bundle.
// codes replaces the code repository when non-nil, typically a [CodeCache].
func (r *Repositories) Lookups(codes validators.CodeLookup) validators.Lookups {
	if codes == nil {
		codes = r.Codes
	}
	return validators.Lookups{
		Codes:               codes,
		Organizations:       r.Organizations,
		Taxonomy:            r.Taxonomy,
		Channels:            r.Channels,
		Services:            r.Services,
		GeneralDescriptions: r.GeneralDescriptions,
	}
}
