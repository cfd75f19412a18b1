package models

// ChannelType identifies the concrete service channel kind.
type ChannelType string

const (
	ChannelTypeElectronic      ChannelType = "EChannel"
	ChannelTypePhone           ChannelType = "Phone"
	ChannelTypePrintableForm   ChannelType = "PrintableForm"
	ChannelTypeServiceLocation ChannelType = "ServiceLocation"
	ChannelTypeWebPage         ChannelType = "WebPage"
)

// ServiceChannel holds the fields shared by every channel type.
type ServiceChannel struct {
	ID       *string `json:"id,omitempty"`
	SourceID string  `json:"sourceId,omitempty"`

	OrganizationID *string `json:"organizationId,omitempty"`

	ServiceChannelNames        []LanguageItem      `json:"serviceChannelNames,omitempty"`
	ServiceChannelDescriptions []LocalizedListItem `json:"serviceChannelDescriptions,omitempty"`

	Languages []string `json:"languages,omitempty"`

	AreaType string `json:"areaType,omitempty"`
	Areas    []Area `json:"areas,omitempty"`

	SupportPhones []Phone `json:"supportPhones,omitempty"`
	SupportEmails []Email `json:"supportEmails,omitempty"`

	ServiceHours []ServiceHour `json:"serviceHours,omitempty"`

	// Services are the ids of services attached to the channel.
	Services []string `json:"services,omitempty"`

	IsVisibleForAll *bool `json:"isVisibleForAll,omitempty"`

	PublishingStatus string `json:"publishingStatus,omitempty"`

	// AvailableLanguages is set on persisted versions only.
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
}

// ElectronicChannel is an online service (e-service).
type ElectronicChannel struct {
	ServiceChannel

	WebPages               []WebPage    `json:"webPage,omitempty"`
	Attachments            []Attachment `json:"attachments,omitempty"`
	RequiresSignature      bool         `json:"requiresSignature"`
	SignatureQuantity      *int         `json:"signatureQuantity,omitempty"`
	RequiresAuthentication bool         `json:"requiresAuthentication"`
}

// PhoneChannel is a phone service.
type PhoneChannel struct {
	ServiceChannel

	PhoneNumbers []Phone   `json:"phoneNumbers,omitempty"`
	WebPages     []WebPage `json:"webPage,omitempty"`
}

// PrintableFormChannel is a printable form delivered by mail.
type PrintableFormChannel struct {
	ServiceChannel

	FormIdentifier  []LanguageItem `json:"formIdentifier,omitempty"`
	DeliveryAddress *Address       `json:"deliveryAddress,omitempty"`
	ChannelUrls     []WebPage      `json:"channelUrls,omitempty"`
	Attachments     []Attachment   `json:"attachments,omitempty"`
}

// ServiceLocationChannel is a physical service location.
type ServiceLocationChannel struct {
	ServiceChannel

	Addresses    []Address `json:"addresses,omitempty"`
	PhoneNumbers []Phone   `json:"phoneNumbers,omitempty"`
	FaxNumbers   []Phone   `json:"faxNumbers,omitempty"`
	Emails       []Email   `json:"emails,omitempty"`
	WebPages     []WebPage `json:"webPages,omitempty"`
}

// WebPageChannel is a plain web page.
type WebPageChannel struct {
	ServiceChannel

	WebPages []WebPage `json:"webPage,omitempty"`
}
