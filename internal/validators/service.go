package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// ServiceValidator validates a service candidate.
type ServiceValidator struct {
	model   *models.Service
	current *models.Service
	deps    Deps
}

// NewServiceValidator returns the validator of model. current is the
// persisted version or nil on create.
func NewServiceValidator(model, current *models.Service, deps Deps) (*ServiceValidator, error) {
	err := deps.Lookups.require(needCodes, needOrganizations, needTaxonomy, needChannels, needGeneralDescriptions)
	if err != nil {
		return nil, err
	}
	return &ServiceValidator{model: model, current: current, deps: deps}, nil
}

func (v *ServiceValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	s := v.model
	if s == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.Service{}
	}
	lookups, policy := v.deps.Lookups, v.deps.Policy

	target, currentStatus, err := validateStatus(ctx, sink, s.PublishingStatus, cur.PublishingStatus)
	if err != nil {
		return err
	}

	gd, err := v.generalDescription(ctx, sink, s.GeneralDescriptionID, cur.GeneralDescriptionID)
	if err != nil {
		return err
	}
	var (
		gdClassCount   int
		gdTargetGroups []string
	)
	if gd != nil {
		gdClassCount, gdTargetGroups = len(gd.ServiceClasses), gd.TargetGroups
	}

	names := pick(s.ServiceNames, cur.ServiceNames)
	descriptions := pick(s.ServiceDescriptions, cur.ServiceDescriptions)
	optional := LanguageOptions{CheckAvailability: true, AvailableLanguages: models.Languages(names, descriptions)}
	organizationID := pickString(s.OrganizationID, cur.OrganizationID)

	candidateLanguages := unionOf(
		models.Languages(s.ServiceNames, s.ServiceDescriptions),
		models.Languages(s.Keywords, s.Requirements),
		models.Languages(s.ServiceVouchers),
	)

	return runAll(ctx, sink,
		NewGUIDValidator(s.ID, "Id"),
		NewEnumValidator(s.Type, "Type", serviceTypes...),
		NewEnumValidator(s.FundingType, "FundingType", models.FundingTypePubliclyFunded, models.FundingTypeMarketFunded),
		NewEnumValidator(s.ChargeType, "ServiceChargeType", models.ServiceChargeTypeCharged, models.ServiceChargeTypeFree),
		NewLocalizedListValidator(s.ServiceNames, "ServiceNames", LanguageOptions{AllowedTypes: nameTypes}),
		NewLocalizedListValidator(s.ServiceDescriptions, "ServiceDescriptions", LanguageOptions{AllowedTypes: descriptionTypes}),
		NewLanguageCodeListValidator(s.Languages, "Languages", lookups.Codes),
		NewLocalizedListValidator(s.Keywords, "Keywords", optional),
		NewLocalizedListValidator(s.Requirements, "Requirements", optional),
		NewLawListValidator(s.Legislation, "Legislation", optional),
		NewWebPageListValidator(s.ServiceVouchers, "ServiceVouchers", optional),
		NewAreaAndTypeValidator(s.AreaType, s.Areas, lookups.Codes),
		NewServiceClassListValidator(s.ServiceClasses, "ServiceClasses", policy, gdClassCount, lookups.Taxonomy),
		NewOntologyTermListValidator(s.OntologyTerms, "OntologyTerms", policy, lookups.Taxonomy),
		NewLifeEventListValidator(s.LifeEvents, "LifeEvents", policy, lookups.Taxonomy),
		NewIndustrialClassListValidator(s.IndustrialClasses, "IndustrialClasses", lookups.Taxonomy),
		NewTargetGroupListValidator(s.TargetGroups, "TargetGroups", lookups.Taxonomy),
		NewTargetGroupGateValidator(s.LifeEvents, s.IndustrialClasses, s.TargetGroups, cur.TargetGroups, gdTargetGroups, lookups.Taxonomy),
		NewOrganizationIDValidator(s.OrganizationID, "OrganizationId", lookups.Organizations),
		NewOrganizationListValidator(s.OtherResponsibleOrganizations, "OtherResponsibleOrganizations", lookups.Organizations),
		NewServiceProducerListValidator(s.ServiceProducers, "ServiceProducers",
			unionOf([]string{organizationID}, pick(s.OtherResponsibleOrganizations, cur.OtherResponsibleOrganizations)),
			lookups.Organizations, optional),
		NewDateRangeValidator(s.ValidFrom, s.ValidTo, "ValidTo"),
		NewConnectionListValidator(s.ServiceChannels, KeyChannelRelations, v.deps),
		NewRequiredWhenPublishedValidator(target, "OrganizationId", organizationID != ""),
		NewCompletenessValidator(Completeness{
			Target:             target,
			CurrentStatus:      currentStatus,
			HasCurrent:         v.current != nil,
			CurrentLanguages:   cur.AvailableLanguages,
			CandidateLanguages: candidateLanguages,
			Properties: []RequiredProperty{
				NewRequiredProperty("ServiceNames", s.ServiceNames, cur.ServiceNames, models.NameTypeName),
				NewRequiredProperty("ServiceDescriptions", s.ServiceDescriptions, cur.ServiceDescriptions, summaryAndDesc...),
			},
		}),
		NewNameSummaryValidator(names, descriptions, "ServiceNames", policy),
		NewOrganizationLanguagesValidator(organizationID, candidateLanguages, target, v.deps.Scope, lookups.Organizations),
	)
}

// generalDescription resolves the attached general description. A candidate
// without one inherits the current version's.
func (v *ServiceValidator) generalDescription(ctx context.Context, sink *ErrorSink, candidate, current *string) (*models.GeneralDescriptionInfo, error) {
	raw := pickString(candidate, current)
	if raw == "" {
		return nil, nil
	}
	id, ok := parseGUID(raw)
	if !ok {
		sink.AddErrorf("GeneralDescriptionId", msgInvalidGUID, raw)
		return nil, nil
	}

	gd, err := v.deps.Lookups.GeneralDescriptions.GeneralDescription(ctx, id)
	if err != nil {
		return nil, lookupError("general description", err)
	}
	if gd == nil {
		sink.AddErrorf("GeneralDescriptionId", msgGeneralDescriptionNotFound, raw)
		return nil, nil
	}
	if gd.Status != models.Published {
		sink.AddErrorf("GeneralDescriptionId", msgGeneralDescriptionNotPublished, raw)
	}
	return gd, nil
}

// ServiceProducerListValidator checks who produces a service.
type ServiceProducerListValidator struct {
	items       []models.ServiceProducer
	property    string
	responsible []string
	orgs        OrganizationLookup
	opts        LanguageOptions
}

// NewServiceProducerListValidator validates items at property[i]. Self
// produced producers must be among responsible.
func NewServiceProducerListValidator(items []models.ServiceProducer, property string, responsible []string, orgs OrganizationLookup, opts LanguageOptions) *ServiceProducerListValidator {
	return &ServiceProducerListValidator{items: items, property: property, responsible: responsible, orgs: orgs, opts: opts}
}

func (v *ServiceProducerListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	for i, producer := range v.items {
		path := indexPath(v.property, i)

		err := runAll(ctx, sink,
			NewEnumValidator(producer.ProvisionType, path+".ProvisionType",
				models.ProvisionTypeSelfProduced, models.ProvisionTypePurchase, models.ProvisionTypeOther).Required(),
			NewOrganizationListValidator(producer.Organizations, path+".Organizations", v.orgs),
			NewLocalizedListValidator(producer.AdditionalInformation, path+".AdditionalInformation", v.opts),
		)
		if err != nil {
			return err
		}

		switch {
		case strings.EqualFold(producer.ProvisionType, models.ProvisionTypeSelfProduced):
			if len(producer.Organizations) == 0 {
				sink.AddErrorf(path+".Organizations", msgProducerOrganizations, models.ProvisionTypeSelfProduced)
				continue
			}
			var outsiders []string
			for _, org := range producer.Organizations {
				if !containsFold(v.responsible, strings.TrimSpace(org)) && !slices.Contains(outsiders, org) {
					outsiders = append(outsiders, org)
				}
			}
			if len(outsiders) > 0 {
				sink.AddErrorf(path+".Organizations", msgSelfProducers, strings.Join(outsiders, ", "))
			}
		case strings.TrimSpace(producer.ProvisionType) != "" && len(producer.Organizations) == 0 && len(producer.AdditionalInformation) == 0:
			sink.AddErrorf(path+".Organizations", msgProducerOrganizations, producer.ProvisionType)
		}
	}
	return nil
}
