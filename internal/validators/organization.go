package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

var organizationTypes = []string{
	models.OrganizationTypeState,
	models.OrganizationTypeMunicipality,
	models.OrganizationTypeRegionalOrg,
	models.OrganizationTypeOrganization,
	models.OrganizationTypeCompany,
	models.OrganizationTypeSotePublic,
	models.OrganizationTypeSotePrivate,
	models.OrganizationTypeRegion,
}

// OrganizationValidator validates an organization candidate.
type OrganizationValidator struct {
	model   *models.Organization
	current *models.Organization
	deps    Deps
}

// NewOrganizationValidator returns the validator of model. current is the
// persisted version or nil on create.
func NewOrganizationValidator(model, current *models.Organization, deps Deps) (*OrganizationValidator, error) {
	if err := deps.Lookups.require(needCodes, needOrganizations); err != nil {
		return nil, err
	}
	return &OrganizationValidator{model: model, current: current, deps: deps}, nil
}

func (v *OrganizationValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	o := v.model
	if o == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.Organization{}
	}
	codes, orgs := v.deps.Lookups.Codes, v.deps.Lookups.Organizations

	target, currentStatus, err := validateStatus(ctx, sink, o.PublishingStatus, cur.PublishingStatus)
	if err != nil {
		return err
	}

	names := pick(o.OrganizationNames, cur.OrganizationNames)
	descriptions := pick(o.OrganizationDescriptions, cur.OrganizationDescriptions)
	optional := LanguageOptions{CheckAvailability: true, AvailableLanguages: models.Languages(names, descriptions)}

	organizationType := NewEnumValidator(o.OrganizationType, "OrganizationType", organizationTypes...)
	if v.current == nil {
		organizationType.Required()
	}

	candidateLanguages := unionOf(
		models.Languages(o.OrganizationNames, o.OrganizationDescriptions),
		models.Languages(o.EmailAddresses),
		models.Languages(o.PhoneNumbers),
		models.Languages(o.WebPages),
	)

	return runAll(ctx, sink,
		NewGUIDValidator(o.ID, "Id"),
		organizationType,
		ValidatorFunc(func(ctx context.Context, sink *ErrorSink) error {
			return v.validateMunicipality(ctx, sink, cur)
		}),
		NewBusinessCodeValidator(o.BusinessCode, "BusinessCode"),
		NewOrganizationIDValidator(o.ParentOrganizationID, "ParentOrganizationId", orgs),
		ValidatorFunc(func(_ context.Context, sink *ErrorSink) error {
			parent, self := deref(o.ParentOrganizationID), pickString(o.ID, cur.ID)
			if parent != "" && strings.EqualFold(parent, self) {
				sink.AddError("ParentOrganizationId", msgParentIsSelf)
			}
			return nil
		}),
		NewLocalizedListValidator(o.OrganizationNames, "OrganizationNames", LanguageOptions{AllowedTypes: nameTypes}),
		NewLocalizedListValidator(o.OrganizationDescriptions, "OrganizationDescriptions", LanguageOptions{AllowedTypes: summaryAndDesc}),
		ValidatorFunc(func(ctx context.Context, sink *ErrorSink) error {
			return validateDisplayNameTypes(ctx, sink, o.DisplayNameTypes, names)
		}),
		NewAreaAndTypeValidator(o.AreaType, o.Areas, codes),
		NewEmailListValidator(o.EmailAddresses, "EmailAddresses", optional),
		NewPhoneListValidator(o.PhoneNumbers, "PhoneNumbers", optional, codes),
		NewWebPageListValidator(o.WebPages, "WebPages", optional),
		NewAddressListValidator(o.Addresses, "Addresses", codes, models.AddressTypeVisiting, models.AddressTypePostal),
		NewCompletenessValidator(Completeness{
			Target:             target,
			CurrentStatus:      currentStatus,
			HasCurrent:         v.current != nil,
			CurrentLanguages:   cur.AvailableLanguages,
			CandidateLanguages: candidateLanguages,
			Properties: []RequiredProperty{
				NewRequiredProperty("OrganizationNames", o.OrganizationNames, cur.OrganizationNames, models.NameTypeName),
				NewRequiredProperty("OrganizationDescriptions", o.OrganizationDescriptions, cur.OrganizationDescriptions, models.DescriptionTypeSummary),
			},
		}),
		NewOrganizationLanguagesValidator(pickString(o.ID, cur.ID), candidateLanguages, target, v.deps.Scope, orgs),
	)
}

func (v *OrganizationValidator) validateMunicipality(ctx context.Context, sink *ErrorSink, cur *models.Organization) error {
	o := v.model
	organizationType := o.OrganizationType
	if organizationType == "" {
		organizationType = cur.OrganizationType
	}
	municipality := pickString(o.Municipality, cur.Municipality)

	if strings.EqualFold(organizationType, models.OrganizationTypeMunicipality) && municipality == "" {
		sink.AddErrorf("Municipality", msgMunicipalityRequired, models.OrganizationTypeMunicipality)
		return nil
	}
	return NewCodeValidator(deref(o.Municipality), "Municipality", CodeMunicipality, v.deps.Lookups.Codes).Validate(ctx, sink)
}

// validateDisplayNameTypes requires a name of the selected type in each language.
func validateDisplayNameTypes(ctx context.Context, sink *ErrorSink, displayNames []models.NameTypeByLanguage, names []models.LocalizedListItem) error {
	for i, d := range displayNames {
		path := indexPath("DisplayNameTypes", i)
		if err := NewEnumValidator(d.Type, path+".Type", nameTypes...).Required().Validate(ctx, sink); err != nil {
			return err
		}
		if strings.TrimSpace(d.Language) == "" {
			sink.AddError(path+".Language", msgLanguageRequired)
			continue
		}
		if sink.Has(path + ".Type") {
			continue
		}

		found := false
		for _, name := range names {
			if name.Language == d.Language && strings.EqualFold(name.Type, d.Type) {
				found = true
				break
			}
		}
		if !found {
			sink.AddErrorf(path, msgDisplayNameType, d.Type, d.Language)
		}
	}
	return nil
}
