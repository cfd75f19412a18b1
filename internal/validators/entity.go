package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// Lookups bundles the collaborators an entity validator may call.
type Lookups struct {
	Codes               CodeLookup
	Organizations       OrganizationLookup
	Taxonomy            TaxonomyLookup
	Channels            ChannelLookup
	Services            ServiceLookup
	GeneralDescriptions GeneralDescriptionLookup
}

type lookupKind string

const (
	needCodes               lookupKind = "code lookup"
	needOrganizations       lookupKind = "organization lookup"
	needTaxonomy            lookupKind = "taxonomy lookup"
	needChannels            lookupKind = "channel lookup"
	needServices            lookupKind = "service lookup"
	needGeneralDescriptions lookupKind = "general description lookup"
)

// require returns ErrMissingDependency naming every requested collaborator that is nil.
func (l Lookups) require(kinds ...lookupKind) error {
	var missing []string
	for _, kind := range kinds {
		var present bool
		switch kind {
		case needCodes:
			present = l.Codes != nil
		case needOrganizations:
			present = l.Organizations != nil
		case needTaxonomy:
			present = l.Taxonomy != nil
		case needChannels:
			present = l.Channels != nil
		case needServices:
			present = l.Services != nil
		case needGeneralDescriptions:
			present = l.GeneralDescriptions != nil
		}
		if !present {
			missing = append(missing, string(kind))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingDependency, strings.Join(missing, ", "))
	}
	return nil
}

// Deps is what an entity validator is constructed with.
type Deps struct {
	Lookups Lookups
	Policy  Policy
	Scope   models.Scope

	// AvailableLanguages restricts the localized data of connections. An
	// empty set rejects any localized connection data.
	AvailableLanguages []string
}

// validateStatus records an illegal status change and resolves the target
// and current statuses.
func validateStatus(ctx context.Context, sink *ErrorSink, newStatus, currentStatus string) (target, current models.PublishingStatus, err error) {
	status := NewPublishingStatusValidator(newStatus, currentStatus)
	if err = status.Validate(ctx, sink); err != nil {
		return "", "", err
	}
	target, _ = status.Target()
	current, _ = status.Current()
	return target, current, nil
}

// pick returns candidate when supplied, else current.
func pick[T any](candidate, current []T) []T {
	if candidate != nil {
		return candidate
	}
	return current
}

// pickString returns the trimmed candidate value when set, else the current one.
func pickString(candidate, current *string) string {
	if v := deref(candidate); v != "" {
		return v
	}
	return deref(current)
}

var (
	nameTypes        = []string{models.NameTypeName, models.NameTypeAlternativeName}
	summaryAndDesc   = []string{models.DescriptionTypeSummary, models.DescriptionTypeDescription}
	serviceTypes     = []string{models.ServiceTypeService, models.ServiceTypePermissionAndObligation, models.ServiceTypeProfessionalQualifications}
	descriptionTypes = []string{
		models.DescriptionTypeDescription,
		models.DescriptionTypeSummary,
		models.DescriptionTypeUserInstruction,
		models.DescriptionTypeChargeTypeAdditionalInfo,
		models.DescriptionTypeDeadLine,
		models.DescriptionTypeProcessingTime,
		models.DescriptionTypeValidityTime,
		models.DescriptionTypeBackgroundDescription,
		models.DescriptionTypeGeneralDescriptionTypeAdd,
	}
)
