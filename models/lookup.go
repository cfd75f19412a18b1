package models

import "github.com/google/uuid"

// TaxonomyKind selects one of the controlled vocabularies.
type TaxonomyKind string

const (
	TaxonomyServiceClass    TaxonomyKind = "ServiceClass"
	TaxonomyOntologyTerm    TaxonomyKind = "OntologyTerm"
	TaxonomyLifeEvent       TaxonomyKind = "LifeEvent"
	TaxonomyIndustrialClass TaxonomyKind = "IndustrialClass"
	TaxonomyTargetGroup     TaxonomyKind = "TargetGroup"
)

// Well-known target group root codes.
const (
	TargetGroupCitizens   = "KR1"
	TargetGroupBusinesses = "KR2"
)

// TaxonomyItem is a resolved vocabulary term.
type TaxonomyItem struct {
	ID       uuid.UUID  `json:"id"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	URI      string     `json:"uri"`
	Code     string     `json:"code"`
}

// ChannelInfo is the lookup view of a persisted channel.
type ChannelInfo struct {
	ID              uuid.UUID   `json:"id"`
	Type            ChannelType `json:"type"`
	OrganizationID  uuid.UUID   `json:"organizationId"`
	IsVisibleForAll bool        `json:"isVisibleForAll"`
}

// ServiceInfo is the lookup view of a persisted service.
type ServiceInfo struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organizationId"`
	Status         PublishingStatus `json:"publishingStatus"`
}

// GeneralDescriptionInfo is the lookup view of a persisted general description.
type GeneralDescriptionInfo struct {
	ID             uuid.UUID        `json:"id"`
	Status         PublishingStatus `json:"publishingStatus"`
	ServiceClasses []string         `json:"serviceClasses,omitempty"`
	TargetGroups   []string         `json:"targetGroups,omitempty"`
}
