package validators

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/models"
)

// GeneralDescriptionValidator validates a general description candidate.
type GeneralDescriptionValidator struct {
	model, current *models.GeneralDescription
	deps           Deps
}

// NewGeneralDescriptionValidator returns the validator of model.
func NewGeneralDescriptionValidator(model, current *models.GeneralDescription, deps Deps) (*GeneralDescriptionValidator, error) {
	if err := deps.Lookups.require(needCodes, needTaxonomy); err != nil {
		return nil, err
	}
	return &GeneralDescriptionValidator{model: model, current: current, deps: deps}, nil
}

func (v *GeneralDescriptionValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	g := v.model
	if g == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.GeneralDescription{}
	}
	lookups, policy := v.deps.Lookups, v.deps.Policy

	target, currentStatus, err := validateStatus(ctx, sink, g.PublishingStatus, cur.PublishingStatus)
	if err != nil {
		return err
	}

	names := pick(g.Names, cur.Names)
	descriptions := pick(g.Descriptions, cur.Descriptions)
	optional := LanguageOptions{CheckAvailability: true, AvailableLanguages: models.Languages(names, descriptions)}

	serviceType := NewEnumValidator(g.Type, "Type", serviceTypes...)
	if v.current == nil {
		serviceType.Required()
	}

	return runAll(ctx, sink,
		NewGUIDValidator(g.ID, "Id"),
		serviceType,
		NewLocalizedListValidator(g.Names, "Names", LanguageOptions{AllowedTypes: nameTypes}),
		NewLocalizedListValidator(g.Descriptions, "Descriptions", LanguageOptions{AllowedTypes: descriptionTypes}),
		NewLanguageCodeListValidator(g.Languages, "Languages", lookups.Codes),
		NewLocalizedListValidator(g.Requirements, "Requirements", optional),
		NewLawListValidator(g.Legislation, "Legislation", optional),
		NewServiceClassListValidator(g.ServiceClasses, "ServiceClasses", policy, 0, lookups.Taxonomy),
		NewOntologyTermListValidator(g.OntologyTerms, "OntologyTerms", policy, lookups.Taxonomy),
		NewLifeEventListValidator(g.LifeEvents, "LifeEvents", policy, lookups.Taxonomy),
		NewIndustrialClassListValidator(g.IndustrialClasses, "IndustrialClasses", lookups.Taxonomy),
		NewTargetGroupListValidator(g.TargetGroups, "TargetGroups", lookups.Taxonomy),
		NewTargetGroupGateValidator(g.LifeEvents, g.IndustrialClasses, g.TargetGroups, cur.TargetGroups, nil, lookups.Taxonomy),
		NewCompletenessValidator(Completeness{
			Target:             target,
			CurrentStatus:      currentStatus,
			HasCurrent:         v.current != nil,
			CurrentLanguages:   cur.AvailableLanguages,
			CandidateLanguages: unionOf(models.Languages(g.Names, g.Descriptions), models.Languages(g.Requirements)),
			Properties: []RequiredProperty{
				NewRequiredProperty("Names", g.Names, cur.Names, models.NameTypeName),
				NewRequiredProperty("Descriptions", g.Descriptions, cur.Descriptions, summaryAndDesc...),
			},
		}),
		NewNameSummaryValidator(names, descriptions, "Names", policy),
	)
}
