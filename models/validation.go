package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EntityType names the root entity a validation request is about.
type EntityType string

const (
	EntityService              EntityType = "service"
	EntityOrganization         EntityType = "organization"
	EntityElectronicChannel    EntityType = "electronic-channel"
	EntityPhoneChannel         EntityType = "phone-channel"
	EntityPrintableFormChannel EntityType = "printable-form-channel"
	EntityServiceLocation      EntityType = "service-location-channel"
	EntityWebPageChannel       EntityType = "webpage-channel"
	EntityServiceCollection    EntityType = "service-collection"
	EntityGeneralDescription   EntityType = "general-description"
	EntityServiceConnections   EntityType = "service-connections"
	EntityChannelConnections   EntityType = "channel-connections"
)

var entityTypes = []EntityType{
	EntityService,
	EntityOrganization,
	EntityElectronicChannel,
	EntityPhoneChannel,
	EntityPrintableFormChannel,
	EntityServiceLocation,
	EntityWebPageChannel,
	EntityServiceCollection,
	EntityGeneralDescription,
	EntityServiceConnections,
	EntityChannelConnections,
}

// ParseEntityType resolves a raw entity name as used in API paths.
func ParseEntityType(s string) (EntityType, error) {
	for _, t := range entityTypes {
		if string(t) == strings.ToLower(strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown entity type '%s'", s)
}

// NewCandidate returns pointers to empty candidate and current models of the entity type.
func (t EntityType) NewCandidate() (candidate any, current any) {
	switch t {
	case EntityService:
		return &Service{}, &Service{}
	case EntityOrganization:
		return &Organization{}, &Organization{}
	case EntityElectronicChannel:
		return &ElectronicChannel{}, &ElectronicChannel{}
	case EntityPhoneChannel:
		return &PhoneChannel{}, &PhoneChannel{}
	case EntityPrintableFormChannel:
		return &PrintableFormChannel{}, &PrintableFormChannel{}
	case EntityServiceLocation:
		return &ServiceLocationChannel{}, &ServiceLocationChannel{}
	case EntityWebPageChannel:
		return &WebPageChannel{}, &WebPageChannel{}
	case EntityServiceCollection:
		return &ServiceCollection{}, &ServiceCollection{}
	case EntityGeneralDescription:
		return &GeneralDescription{}, &GeneralDescription{}
	case EntityServiceConnections:
		return &ServiceConnections{}, nil
	case EntityChannelConnections:
		return &ChannelConnections{}, nil
	}
	return nil, nil
}

// ValidationRequest is one validation call: the candidate, the optional
// current version, and the caller scope.
type ValidationRequest struct {
	Entity    EntityType
	Candidate any
	Current   any
	Scope     Scope

	// AvailableLanguages restricts the localized data of connections.
	AvailableLanguages []string
}

// ValidationResult is the outcome returned to API callers.
type ValidationResult struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// ValidationCall is a validation request as received by the API, before the
// candidate and current documents are decoded into entity models.
type ValidationCall struct {
	Entity string `json:"-"`

	// Scope.Version zero selects the configured default version.
	Scope Scope `json:"-"`

	Candidate          json.RawMessage `json:"candidate"`
	Current            json.RawMessage `json:"current,omitempty"`
	AvailableLanguages []string        `json:"availableLanguages,omitempty"`
}
