package models

import (
	"fmt"
	"strings"
)

// AreaInformationType tells where an entity is available.
type AreaInformationType string

const (
	AreaInformationWholeCountry                   AreaInformationType = "WholeCountry"
	AreaInformationWholeCountryExceptAlandIslands AreaInformationType = "WholeCountryExceptAlandIslands"
	AreaInformationAreaType                       AreaInformationType = "AreaType"
)

// AreaType is the kind of code listed in an Area.
type AreaType string

const (
	AreaTypeMunicipality    AreaType = "Municipality"
	AreaTypeProvince        AreaType = "Province"
	AreaTypeBusinessRegions AreaType = "BusinessRegions"
	AreaTypeHospitalRegions AreaType = "HospitalRegions"
)

var (
	areaInformationTypes = []AreaInformationType{
		AreaInformationWholeCountry,
		AreaInformationWholeCountryExceptAlandIslands,
		AreaInformationAreaType,
	}
	areaTypes = []AreaType{AreaTypeMunicipality, AreaTypeProvince, AreaTypeBusinessRegions, AreaTypeHospitalRegions}
)

// ParseAreaInformationType resolves a raw area information type.
func ParseAreaInformationType(s string) (AreaInformationType, error) {
	for _, t := range areaInformationTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	names := make([]string, 0, len(areaInformationTypes))
	for _, t := range areaInformationTypes {
		names = append(names, string(t))
	}
	return "", fmt.Errorf("unknown area type '%s', allowed values are: %s", s, strings.Join(names, ", "))
}

// ParseAreaType resolves a raw area code type.
func ParseAreaType(s string) (AreaType, error) {
	for _, t := range areaTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	names := make([]string, 0, len(areaTypes))
	for _, t := range areaTypes {
		names = append(names, string(t))
	}
	return "", fmt.Errorf("unknown area code type '%s', allowed values are: %s", s, strings.Join(names, ", "))
}

// Area is a set of codes of one area type.
type Area struct {
	Type      string   `json:"type"`
	AreaCodes []string `json:"areaCodes,omitempty"`
}
