package models

// ServiceCollection groups services under a common name.
type ServiceCollection struct {
	ID       *string `json:"id,omitempty"`
	SourceID string  `json:"sourceId,omitempty"`

	OrganizationID *string `json:"organizationId,omitempty"`

	ServiceCollectionNames        []LanguageItem      `json:"serviceCollectionNames,omitempty"`
	ServiceCollectionDescriptions []LocalizedListItem `json:"serviceCollectionDescriptions,omitempty"`

	// Services are the ids of the grouped services.
	Services []string `json:"services,omitempty"`

	PublishingStatus string `json:"publishingStatus,omitempty"`

	// AvailableLanguages is set on persisted versions only.
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
}
