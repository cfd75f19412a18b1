package models

import "time"

// Service types shared by services and general descriptions.
const (
	ServiceTypeService                    = "Service"
	ServiceTypePermissionAndObligation    = "PermissionAndObligation"
	ServiceTypeProfessionalQualifications = "ProfessionalQualifications"
)

// Service charge types.
const (
	ServiceChargeTypeCharged = "Charged"
	ServiceChargeTypeFree    = "Free"
)

// Service funding types.
const (
	FundingTypePubliclyFunded = "PubliclyFunded"
	FundingTypeMarketFunded   = "MarketFunded"
)

// Service producer provision types.
const (
	ProvisionTypeSelfProduced = "SelfProduced"
	ProvisionTypePurchase     = "PurchaseServices"
	ProvisionTypeOther        = "Other"
)

// Service is the candidate representation of a public service.
//
// Nil slices and pointers mean "not supplied"; on updates such fields keep
// the value of the current version.
type Service struct {
	ID       *string `json:"id,omitempty"`
	SourceID string  `json:"sourceId,omitempty"`

	Type        string `json:"type,omitempty"`
	FundingType string `json:"fundingType,omitempty"`
	ChargeType  string `json:"serviceChargeType,omitempty"`

	ServiceNames        []LocalizedListItem `json:"serviceNames,omitempty"`
	ServiceDescriptions []LocalizedListItem `json:"serviceDescriptions,omitempty"`

	// Languages lists the languages in which the service is provided.
	Languages []string `json:"languages,omitempty"`

	Keywords     []LanguageItem `json:"keywords,omitempty"`
	Requirements []LanguageItem `json:"requirements,omitempty"`
	Legislation  []Law          `json:"legislation,omitempty"`

	AreaType string `json:"areaType,omitempty"`
	Areas    []Area `json:"areas,omitempty"`

	ServiceClasses    []string `json:"serviceClasses,omitempty"`
	OntologyTerms     []string `json:"ontologyTerms,omitempty"`
	LifeEvents        []string `json:"lifeEvents,omitempty"`
	IndustrialClasses []string `json:"industrialClasses,omitempty"`
	TargetGroups      []string `json:"targetGroups,omitempty"`

	GeneralDescriptionID *string `json:"generalDescriptionId,omitempty"`

	// OrganizationID is the main responsible organization.
	OrganizationID                *string  `json:"mainResponsibleOrganization,omitempty"`
	OtherResponsibleOrganizations []string `json:"otherResponsibleOrganizations,omitempty"`

	ServiceProducers []ServiceProducer `json:"serviceProducers,omitempty"`
	ServiceVouchers  []WebPage         `json:"serviceVouchers,omitempty"`

	// ServiceChannels are the channels attached to the service.
	ServiceChannels []ServiceChannelConnection `json:"serviceChannels,omitempty"`

	PublishingStatus string `json:"publishingStatus,omitempty"`

	// ValidFrom and ValidTo schedule publishing and archiving.
	ValidFrom *time.Time `json:"validFrom,omitempty"`
	ValidTo   *time.Time `json:"validTo,omitempty"`

	// AvailableLanguages is set on persisted versions only.
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
}

// ServiceProducer describes who produces the service.
type ServiceProducer struct {
	ProvisionType         string         `json:"provisionType"`
	Organizations         []string       `json:"organizations,omitempty"`
	AdditionalInformation []LanguageItem `json:"additionalInformation,omitempty"`
}
