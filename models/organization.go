package models

// Organization types.
const (
	OrganizationTypeState        = "State"
	OrganizationTypeMunicipality = "Municipality"
	OrganizationTypeRegionalOrg  = "RegionalOrganization"
	OrganizationTypeOrganization = "Organization"
	OrganizationTypeCompany      = "Company"
	OrganizationTypeSotePublic   = "SotePublic"
	OrganizationTypeSotePrivate  = "SotePrivate"
	OrganizationTypeRegion       = "Region"
)

// Organization is the candidate representation of an organization.
type Organization struct {
	ID       *string `json:"id,omitempty"`
	SourceID string  `json:"sourceId,omitempty"`
	Oid      string  `json:"oid,omitempty"`

	ParentOrganizationID *string `json:"parentOrganizationId,omitempty"`
	OrganizationType     string  `json:"organizationType,omitempty"`
	BusinessCode         string  `json:"businessCode,omitempty"`
	BusinessName         string  `json:"businessName,omitempty"`

	// Municipality is the municipality code, required for Municipality organizations.
	Municipality *string `json:"municipality,omitempty"`

	OrganizationNames        []LocalizedListItem `json:"organizationNames,omitempty"`
	OrganizationDescriptions []LocalizedListItem `json:"organizationDescriptions,omitempty"`

	// DisplayNameTypes selects which name type is shown per language.
	DisplayNameTypes []NameTypeByLanguage `json:"displayNameType,omitempty"`

	AreaType string `json:"areaType,omitempty"`
	Areas    []Area `json:"areas,omitempty"`

	EmailAddresses []Email   `json:"emailAddresses,omitempty"`
	PhoneNumbers   []Phone   `json:"phoneNumbers,omitempty"`
	WebPages       []WebPage `json:"webPages,omitempty"`
	Addresses      []Address `json:"addresses,omitempty"`

	PublishingStatus string `json:"publishingStatus,omitempty"`

	// AvailableLanguages is set on persisted versions only.
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
}

// NameTypeByLanguage selects the display name type of one language.
type NameTypeByLanguage struct {
	Type     string `json:"type"`
	Language string `json:"language"`
}
