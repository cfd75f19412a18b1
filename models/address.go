package models

import (
	"fmt"
	"strings"
)

// AddressType is the "character" of an address.
type AddressType string

const (
	AddressTypeVisiting AddressType = "Visiting"
	AddressTypePostal   AddressType = "Postal"
	AddressTypeLocation AddressType = "Location"
)

// AddressSubType discriminates the payload carried by an Address.
type AddressSubType string

const (
	AddressSubTypeSingle             AddressSubType = "Single"
	AddressSubTypeStreet             AddressSubType = "Street"
	AddressSubTypePostOfficeBox      AddressSubType = "PostOfficeBox"
	AddressSubTypeAbroad             AddressSubType = "Abroad"
	AddressSubTypeOther              AddressSubType = "Other"
	AddressSubTypeMultipointLocation AddressSubType = "MultipointLocation"
)

var (
	addressTypes    = []AddressType{AddressTypeVisiting, AddressTypePostal, AddressTypeLocation}
	addressSubTypes = []AddressSubType{
		AddressSubTypeSingle,
		AddressSubTypeStreet,
		AddressSubTypePostOfficeBox,
		AddressSubTypeAbroad,
		AddressSubTypeOther,
		AddressSubTypeMultipointLocation,
	}
)

// ParseAddressType resolves a raw address type; matching is case-insensitive.
func ParseAddressType(s string) (AddressType, error) {
	for _, t := range addressTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown address type '%s'", s)
}

// ParseAddressSubType resolves a raw address subtype; matching is case-insensitive.
func ParseAddressSubType(s string) (AddressSubType, error) {
	for _, t := range addressSubTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown address subtype '%s'", s)
}

// AddressTypeNames lists the address types for error messages.
func AddressTypeNames() []string {
	names := make([]string, 0, len(addressTypes))
	for _, t := range addressTypes {
		names = append(names, string(t))
	}
	return names
}

// Address is a visiting, postal or location address.
type Address struct {
	// Type is Visiting, Postal or Location.
	Type string `json:"type"`

	// SubType selects which of the payload fields below is used.
	SubType string `json:"subType"`

	// Country is the ISO 3166 alpha-2 code, used by Abroad addresses.
	Country *string `json:"country,omitempty"`

	StreetAddress        *StreetAddress        `json:"streetAddress,omitempty"`
	PostOfficeBoxAddress *PostOfficeBoxAddress `json:"postOfficeBoxAddress,omitempty"`

	// ForeignAddress is the free-text address of an Abroad address.
	ForeignAddress []LanguageItem `json:"foreignAddress,omitempty"`

	// OtherAddress describes a location without a street address (e.g. coordinates only).
	OtherAddress *OtherAddress `json:"otherAddress,omitempty"`

	// MultipointLocation lists the street addresses of a location spanning several points.
	MultipointLocation []StreetAddress `json:"multipointLocation,omitempty"`
}

// StreetAddress is a Finnish street address.
type StreetAddress struct {
	Street                []LanguageItem `json:"street,omitempty"`
	StreetNumber          string         `json:"streetNumber,omitempty"`
	PostalCode            string         `json:"postalCode,omitempty"`
	Municipality          string         `json:"municipality,omitempty"`
	Latitude              string         `json:"latitude,omitempty"`
	Longitude             string         `json:"longitude,omitempty"`
	AdditionalInformation []LanguageItem `json:"additionalInformation,omitempty"`
}

// PostOfficeBoxAddress is a Finnish PO box address.
type PostOfficeBoxAddress struct {
	PostOfficeBox         []LanguageItem `json:"postOfficeBox,omitempty"`
	PostalCode            string         `json:"postalCode,omitempty"`
	Municipality          string         `json:"municipality,omitempty"`
	AdditionalInformation []LanguageItem `json:"additionalInformation,omitempty"`
}

// OtherAddress is a location described by coordinates and free text.
type OtherAddress struct {
	Latitude              string         `json:"latitude,omitempty"`
	Longitude             string         `json:"longitude,omitempty"`
	PostalCode            string         `json:"postalCode,omitempty"`
	AdditionalInformation []LanguageItem `json:"additionalInformation,omitempty"`
}
