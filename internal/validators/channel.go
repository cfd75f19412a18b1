package validators

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/models"
)

// channelRules are the type-specific parts of a channel validation.
type channelRules struct {
	validators []Validator
	required   []RequiredProperty

	// languages are the candidate languages of type-specific fields.
	languages []string
}

// validateChannel runs the rules shared by every channel type together with specific.
func validateChannel(
	ctx context.Context,
	sink *ErrorSink,
	deps Deps,
	model, current *models.ServiceChannel,
	hasCurrent bool,
	specific func(optional LanguageOptions) channelRules,
) error {
	lookups := deps.Lookups

	target, currentStatus, err := validateStatus(ctx, sink, model.PublishingStatus, current.PublishingStatus)
	if err != nil {
		return err
	}

	names := asNames(pick(model.ServiceChannelNames, current.ServiceChannelNames))
	descriptions := pick(model.ServiceChannelDescriptions, current.ServiceChannelDescriptions)
	optional := LanguageOptions{CheckAvailability: true, AvailableLanguages: models.Languages(names, descriptions)}
	organizationID := pickString(model.OrganizationID, current.OrganizationID)

	rules := specific(optional)
	candidateLanguages := unionOf(
		models.Languages(model.ServiceChannelNames),
		models.Languages(model.ServiceChannelDescriptions),
		models.Languages(model.SupportPhones),
		models.Languages(model.SupportEmails),
		rules.languages,
	)

	validators := []Validator{
		NewGUIDValidator(model.ID, "Id"),
		NewOrganizationIDValidator(model.OrganizationID, "OrganizationId", lookups.Organizations),
		NewLocalizedListValidator(model.ServiceChannelNames, "ServiceChannelNames", LanguageOptions{}),
		NewLocalizedListValidator(model.ServiceChannelDescriptions, "ServiceChannelDescriptions", LanguageOptions{AllowedTypes: summaryAndDesc}),
		NewLanguageCodeListValidator(model.Languages, "Languages", lookups.Codes),
		NewAreaAndTypeValidator(model.AreaType, model.Areas, lookups.Codes),
		NewPhoneListValidator(model.SupportPhones, "SupportPhones", optional, lookups.Codes),
		NewEmailListValidator(model.SupportEmails, "SupportEmails", optional),
		NewServiceHourListValidator(model.ServiceHours, "ServiceHours", deps.Policy),
		NewServiceRelationListValidator(model.Services, KeyServiceRelations, lookups.Services),
	}
	validators = append(validators, rules.validators...)
	validators = append(validators,
		NewRequiredWhenPublishedValidator(target, "OrganizationId", organizationID != ""),
		NewCompletenessValidator(Completeness{
			Target:             target,
			CurrentStatus:      currentStatus,
			HasCurrent:         hasCurrent,
			CurrentLanguages:   current.AvailableLanguages,
			CandidateLanguages: candidateLanguages,
			Properties: append([]RequiredProperty{
				NewRequiredProperty("ServiceChannelNames", model.ServiceChannelNames, current.ServiceChannelNames),
				NewRequiredProperty("ServiceChannelDescriptions", model.ServiceChannelDescriptions, current.ServiceChannelDescriptions, summaryAndDesc...),
			}, rules.required...),
		}),
		NewNameSummaryValidator(names, descriptions, "ServiceChannelNames", deps.Policy),
		NewOrganizationLanguagesValidator(organizationID, candidateLanguages, target, deps.Scope, lookups.Organizations),
	)
	return runAll(ctx, sink, validators...)
}

func requireChannelLookups(deps Deps) error {
	return deps.Lookups.require(needCodes, needOrganizations, needServices)
}

// ElectronicChannelValidator validates an electronic channel candidate.
type ElectronicChannelValidator struct {
	model, current *models.ElectronicChannel
	deps           Deps
}

// NewElectronicChannelValidator returns the validator of model.
func NewElectronicChannelValidator(model, current *models.ElectronicChannel, deps Deps) (*ElectronicChannelValidator, error) {
	if err := requireChannelLookups(deps); err != nil {
		return nil, err
	}
	return &ElectronicChannelValidator{model: model, current: current, deps: deps}, nil
}

func (v *ElectronicChannelValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.ElectronicChannel{}
	}

	return validateChannel(ctx, sink, v.deps, &m.ServiceChannel, &cur.ServiceChannel, v.current != nil, func(optional LanguageOptions) channelRules {
		return channelRules{
			validators: []Validator{
				NewWebPageListValidator(m.WebPages, "WebPages", optional),
				NewAttachmentListValidator(m.Attachments, "Attachments", optional),
				ValidatorFunc(func(_ context.Context, sink *ErrorSink) error {
					if m.RequiresSignature && (m.SignatureQuantity == nil || *m.SignatureQuantity <= 0) {
						sink.AddError("SignatureQuantity", msgSignatureQuantity)
					}
					return nil
				}),
			},
			required: []RequiredProperty{
				NewRequiredProperty("WebPages", m.WebPages, cur.WebPages),
			},
			languages: unionOf(models.Languages(m.WebPages), models.Languages(m.Attachments)),
		}
	})
}

// PhoneChannelValidator validates a phone channel candidate.
type PhoneChannelValidator struct {
	model, current *models.PhoneChannel
	deps           Deps
}

// NewPhoneChannelValidator returns the validator of model.
func NewPhoneChannelValidator(model, current *models.PhoneChannel, deps Deps) (*PhoneChannelValidator, error) {
	if err := requireChannelLookups(deps); err != nil {
		return nil, err
	}
	return &PhoneChannelValidator{model: model, current: current, deps: deps}, nil
}

func (v *PhoneChannelValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.PhoneChannel{}
	}

	return validateChannel(ctx, sink, v.deps, &m.ServiceChannel, &cur.ServiceChannel, v.current != nil, func(optional LanguageOptions) channelRules {
		return channelRules{
			validators: []Validator{
				NewPhoneListValidator(m.PhoneNumbers, "PhoneNumbers", optional, v.deps.Lookups.Codes),
				NewWebPageListValidator(m.WebPages, "WebPages", optional),
			},
			required: []RequiredProperty{
				NewRequiredProperty("PhoneNumbers", m.PhoneNumbers, cur.PhoneNumbers),
			},
			languages: unionOf(models.Languages(m.PhoneNumbers), models.Languages(m.WebPages)),
		}
	})
}

// PrintableFormChannelValidator validates a printable form channel candidate.
type PrintableFormChannelValidator struct {
	model, current *models.PrintableFormChannel
	deps           Deps
}

// NewPrintableFormChannelValidator returns the validator of model.
func NewPrintableFormChannelValidator(model, current *models.PrintableFormChannel, deps Deps) (*PrintableFormChannelValidator, error) {
	if err := requireChannelLookups(deps); err != nil {
		return nil, err
	}
	return &PrintableFormChannelValidator{model: model, current: current, deps: deps}, nil
}

func (v *PrintableFormChannelValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.PrintableFormChannel{}
	}

	return validateChannel(ctx, sink, v.deps, &m.ServiceChannel, &cur.ServiceChannel, v.current != nil, func(optional LanguageOptions) channelRules {
		return channelRules{
			validators: []Validator{
				NewLocalizedListValidator(m.FormIdentifier, "FormIdentifier", optional),
				NewAddressValidator(m.DeliveryAddress, "DeliveryAddress", v.deps.Lookups.Codes, models.AddressTypePostal),
				NewWebPageListValidator(m.ChannelUrls, "ChannelUrls", optional),
				NewAttachmentListValidator(m.Attachments, "Attachments", optional),
			},
			required: []RequiredProperty{
				NewRequiredProperty("ChannelUrls", m.ChannelUrls, cur.ChannelUrls),
			},
			languages: unionOf(
				models.Languages(m.FormIdentifier),
				models.Languages(m.ChannelUrls),
				models.Languages(m.Attachments),
			),
		}
	})
}

// ServiceLocationChannelValidator validates a service location channel candidate.
type ServiceLocationChannelValidator struct {
	model, current *models.ServiceLocationChannel
	deps           Deps
}

// NewServiceLocationChannelValidator returns the validator of model.
func NewServiceLocationChannelValidator(model, current *models.ServiceLocationChannel, deps Deps) (*ServiceLocationChannelValidator, error) {
	if err := requireChannelLookups(deps); err != nil {
		return nil, err
	}
	return &ServiceLocationChannelValidator{model: model, current: current, deps: deps}, nil
}

func (v *ServiceLocationChannelValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.ServiceLocationChannel{}
	}
	codes := v.deps.Lookups.Codes

	return validateChannel(ctx, sink, v.deps, &m.ServiceChannel, &cur.ServiceChannel, v.current != nil, func(optional LanguageOptions) channelRules {
		return channelRules{
			validators: []Validator{
				NewAddressListValidator(m.Addresses, "Addresses", codes),
				NewPhoneListValidator(m.PhoneNumbers, "PhoneNumbers", optional, codes),
				NewPhoneListValidator(m.FaxNumbers, "FaxNumbers", optional, codes),
				NewEmailListValidator(m.Emails, "Emails", optional),
				NewWebPageListValidator(m.WebPages, "WebPages", optional),
				ValidatorFunc(func(_ context.Context, sink *ErrorSink) error {
					status, err := NewPublishingStatusValidator(m.PublishingStatus, cur.PublishingStatus).Target()
					if err != nil || !requiresCompleteness(status) {
						return nil
					}
					for _, a := range pick(m.Addresses, cur.Addresses) {
						t, err := models.ParseAddressType(a.Type)
						if err == nil && (t == models.AddressTypeVisiting || t == models.AddressTypeLocation) {
							return nil
						}
					}
					sink.AddError("Addresses", msgLocationAddress)
					return nil
				}),
			},
			languages: unionOf(
				models.Languages(m.PhoneNumbers, m.FaxNumbers),
				models.Languages(m.Emails),
				models.Languages(m.WebPages),
			),
		}
	})
}

// WebPageChannelValidator validates a web page channel candidate.
type WebPageChannelValidator struct {
	model, current *models.WebPageChannel
	deps           Deps
}

// NewWebPageChannelValidator returns the validator of model.
func NewWebPageChannelValidator(model, current *models.WebPageChannel, deps Deps) (*WebPageChannelValidator, error) {
	if err := requireChannelLookups(deps); err != nil {
		return nil, err
	}
	return &WebPageChannelValidator{model: model, current: current, deps: deps}, nil
}

func (v *WebPageChannelValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	m := v.model
	if m == nil {
		return nil
	}
	cur := v.current
	if cur == nil {
		cur = &models.WebPageChannel{}
	}

	return validateChannel(ctx, sink, v.deps, &m.ServiceChannel, &cur.ServiceChannel, v.current != nil, func(optional LanguageOptions) channelRules {
		return channelRules{
			validators: []Validator{
				NewWebPageListValidator(m.WebPages, "WebPages", optional),
			},
			required: []RequiredProperty{
				NewRequiredProperty("WebPages", m.WebPages, cur.WebPages),
			},
			languages: models.Languages(m.WebPages),
		}
	})
}
