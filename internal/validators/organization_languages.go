package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
)

// OrganizationLanguagesValidator checks that a public entity uses only the
// languages the acting user may use for its organization.
type OrganizationLanguagesValidator struct {
	organizationID string
	languages      []string
	target         models.PublishingStatus
	scope          models.Scope
	orgs           OrganizationLookup
}

// NewOrganizationLanguagesValidator validates languages against organizationID.
func NewOrganizationLanguagesValidator(organizationID string, languages []string, target models.PublishingStatus, scope models.Scope, orgs OrganizationLookup) *OrganizationLanguagesValidator {
	return &OrganizationLanguagesValidator{
		organizationID: organizationID,
		languages:      languages,
		target:         target,
		scope:          scope,
		orgs:           orgs,
	}
}

func (v *OrganizationLanguagesValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if !requiresCompleteness(v.target) {
		return nil
	}
	// An organization already reported as missing or malformed is not queried.
	if sink.Has("OrganizationId") {
		return nil
	}
	id, ok := parseGUID(v.organizationID)
	if !ok {
		return nil
	}
	if v.orgs == nil {
		return fmt.Errorf("%w: organization lookup", ErrMissingDependency)
	}

	var userOrganizations []uuid.UUID
	if !v.scope.IsAdmin() {
		userOrganizations = append([]uuid.UUID{}, v.scope.OrganizationIDs...)
	}

	allowed, err := v.orgs.UserOrganizationLanguages(ctx, id, userOrganizations)
	if err != nil {
		sink.AddErrorf("OrganizationId", msgNotUserOrg, id)
		return nil
	}
	for _, lang := range v.languages {
		if !slices.Contains(allowed, lang) {
			sink.AddErrorf("OrganizationId", msgOrgLanguage, lang, id)
		}
	}
	return nil
}
