package models

// GeneralDescription is a nationwide service template that services may attach.
type GeneralDescription struct {
	ID *string `json:"id,omitempty"`

	Type string `json:"type,omitempty"`

	Names        []LocalizedListItem `json:"names,omitempty"`
	Descriptions []LocalizedListItem `json:"descriptions,omitempty"`

	Languages    []string       `json:"languages,omitempty"`
	Requirements []LanguageItem `json:"requirements,omitempty"`
	Legislation  []Law          `json:"legislation,omitempty"`

	ServiceClasses    []string `json:"serviceClasses,omitempty"`
	OntologyTerms     []string `json:"ontologyTerms,omitempty"`
	LifeEvents        []string `json:"lifeEvents,omitempty"`
	IndustrialClasses []string `json:"industrialClasses,omitempty"`
	TargetGroups      []string `json:"targetGroups,omitempty"`

	PublishingStatus string `json:"publishingStatus,omitempty"`

	// AvailableLanguages is set on persisted versions only.
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
}
