package validators

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/models"
)

// ServiceCollectionValidator validates a service collection candidate.
type ServiceCollectionValidator struct {
	model, current *models.ServiceCollection
	deps           Deps
}

// NewServiceCollectionValidator returns the validator of model.
func NewServiceCollectionValidator(model, current *models.ServiceCollection, deps Deps) (*ServiceCollectionValidator, error) {
	if err := deps.Lookups.require(needOrganizations, needServices); err != nil {
		return nil, err
	}
	return &ServiceCollectionValidator{model: model, current: current, deps: deps}, nil
}

func (v *ServiceCollectionValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	c := v.model
	if c == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.ServiceCollection{}
	}
	lookups := v.deps.Lookups

	target, currentStatus, err := validateStatus(ctx, sink, c.PublishingStatus, cur.PublishingStatus)
	if err != nil {
		return err
	}
	organizationID := pickString(c.OrganizationID, cur.OrganizationID)
	candidateLanguages := unionOf(
		models.Languages(c.ServiceCollectionNames),
		models.Languages(c.ServiceCollectionDescriptions),
	)

	return runAll(ctx, sink,
		NewGUIDValidator(c.ID, "Id"),
		NewOrganizationIDValidator(c.OrganizationID, "OrganizationId", lookups.Organizations),
		NewLocalizedListValidator(c.ServiceCollectionNames, "ServiceCollectionNames", LanguageOptions{}),
		NewLocalizedListValidator(c.ServiceCollectionDescriptions, "ServiceCollectionDescriptions",
			LanguageOptions{AllowedTypes: []string{models.DescriptionTypeDescription}}),
		NewServiceRelationListValidator(c.Services, KeyServiceRelations, lookups.Services),
		NewRequiredWhenPublishedValidator(target, "OrganizationId", organizationID != ""),
		NewCompletenessValidator(Completeness{
			Target:             target,
			CurrentStatus:      currentStatus,
			HasCurrent:         v.current != nil,
			CurrentLanguages:   cur.AvailableLanguages,
			CandidateLanguages: candidateLanguages,
			Properties: []RequiredProperty{
				NewRequiredProperty("ServiceCollectionNames", c.ServiceCollectionNames, cur.ServiceCollectionNames),
			},
		}),
		NewOrganizationLanguagesValidator(organizationID, candidateLanguages, target, v.deps.Scope, lookups.Organizations),
	)
}
