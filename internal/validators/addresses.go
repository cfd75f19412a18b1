package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// legalSubTypes lists the subtypes each address type may carry.
var legalSubTypes = map[models.AddressType][]models.AddressSubType{
	models.AddressTypeVisiting: {models.AddressSubTypeSingle, models.AddressSubTypeAbroad, models.AddressSubTypeOther},
	models.AddressTypeLocation: {
		models.AddressSubTypeSingle,
		models.AddressSubTypeAbroad,
		models.AddressSubTypeOther,
		models.AddressSubTypeMultipointLocation,
	},
	models.AddressTypePostal: {models.AddressSubTypeStreet, models.AddressSubTypePostOfficeBox, models.AddressSubTypeAbroad},
}

// AddressValidator checks one address and the payload selected by its subtype.
type AddressValidator struct {
	address      *models.Address
	path         string
	codes        CodeLookup
	allowedTypes []models.AddressType
}

// NewAddressValidator validates address at path. With no allowedTypes every
// address type is accepted.
func NewAddressValidator(address *models.Address, path string, codes CodeLookup, allowedTypes ...models.AddressType) *AddressValidator {
	return &AddressValidator{address: address, path: path, codes: codes, allowedTypes: allowedTypes}
}

func (v *AddressValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	a := v.address
	if a == nil {
		return nil
	}

	addressType, err := models.ParseAddressType(a.Type)
	if err != nil {
		sink.AddErrorf(v.path+".Type", msgInvalidEnum, a.Type, strings.Join(models.AddressTypeNames(), ", "))
		return nil
	}
	if len(v.allowedTypes) > 0 && !slices.Contains(v.allowedTypes, addressType) {
		sink.AddErrorf(v.path+".Type", msgAddressTypeInvalid, addressType, joinTypes(v.allowedTypes))
		return nil
	}

	subType, err := models.ParseAddressSubType(a.SubType)
	if err != nil {
		sink.AddErrorf(v.path+".SubType", msgInvalidEnum, a.SubType, joinTypes(legalSubTypes[addressType]))
		return nil
	}
	if !slices.Contains(legalSubTypes[addressType], subType) {
		sink.AddErrorf(v.path+".SubType", msgSubTypeNotAllowed, subType, addressType)
		return nil
	}

	switch subType {
	case models.AddressSubTypeSingle, models.AddressSubTypeStreet:
		return v.validateStreet(ctx, a.StreetAddress, v.path+".StreetAddress", subType, sink)

	case models.AddressSubTypePostOfficeBox:
		box := a.PostOfficeBoxAddress
		path := v.path + ".PostOfficeBoxAddress"
		if box == nil {
			sink.AddErrorf(path, msgSubTypeRequires, "PostOfficeBoxAddress", subType)
			return nil
		}
		if len(box.PostOfficeBox) == 0 {
			sink.AddErrorf(path+".PostOfficeBox", msgRequired, "PostOfficeBox")
		}
		return runAll(ctx, sink,
			NewLocalizedListValidator(box.PostOfficeBox, path+".PostOfficeBox", LanguageOptions{}),
			NewCodeValidator(box.PostalCode, path+".PostalCode", CodePostal, v.codes),
			NewCodeValidator(box.Municipality, path+".Municipality", CodeMunicipality, v.codes),
		)

	case models.AddressSubTypeAbroad:
		if len(a.ForeignAddress) == 0 {
			sink.AddErrorf(v.path+".ForeignAddress", msgSubTypeRequires, "ForeignAddress", subType)
		}
		return runAll(ctx, sink,
			NewLocalizedListValidator(a.ForeignAddress, v.path+".ForeignAddress", LanguageOptions{}),
			NewCodeValidator(deref(a.Country), v.path+".Country", CodeCountry, v.codes),
		)

	case models.AddressSubTypeOther:
		other := a.OtherAddress
		if other == nil {
			sink.AddErrorf(v.path+".OtherAddress", msgSubTypeRequires, "OtherAddress", subType)
			return nil
		}
		if strings.TrimSpace(other.Latitude) == "" || strings.TrimSpace(other.Longitude) == "" {
			sink.AddErrorf(v.path+".OtherAddress", msgRequired, "Latitude and Longitude")
		}
		return NewCodeValidator(other.PostalCode, v.path+".OtherAddress.PostalCode", CodePostal, v.codes).Validate(ctx, sink)

	case models.AddressSubTypeMultipointLocation:
		if len(a.MultipointLocation) == 0 {
			sink.AddErrorf(v.path+".MultipointLocation", msgSubTypeRequires, "MultipointLocation", subType)
			return nil
		}
		for j := range a.MultipointLocation {
			if err := v.validateStreet(ctx, &a.MultipointLocation[j], indexPath(v.path+".MultipointLocation", j), subType, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *AddressValidator) validateStreet(ctx context.Context, street *models.StreetAddress, path string, subType models.AddressSubType, sink *ErrorSink) error {
	if street == nil {
		sink.AddErrorf(path, msgSubTypeRequires, lastSegment(path), subType)
		return nil
	}
	if len(street.Street) == 0 {
		sink.AddErrorf(path+".Street", msgRequired, "Street")
	}
	return runAll(ctx, sink,
		NewLocalizedListValidator(street.Street, path+".Street", LanguageOptions{}),
		NewCodeValidator(street.PostalCode, path+".PostalCode", CodePostal, v.codes),
		NewCodeValidator(street.Municipality, path+".Municipality", CodeMunicipality, v.codes),
	)
}

// AddressListValidator checks every address of a list and forbids mixing
// foreign addresses with other subtypes of the same address type.
type AddressListValidator struct {
	items        []models.Address
	property     string
	codes        CodeLookup
	allowedTypes []models.AddressType
}

// NewAddressListValidator validates items at property[i].
func NewAddressListValidator(items []models.Address, property string, codes CodeLookup, allowedTypes ...models.AddressType) *AddressListValidator {
	return &AddressListValidator{items: items, property: property, codes: codes, allowedTypes: allowedTypes}
}

func (v *AddressListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	type mix struct{ abroad, other bool }
	var order []models.AddressType
	groups := make(map[models.AddressType]*mix)

	for i := range v.items {
		if err := NewAddressValidator(&v.items[i], indexPath(v.property, i), v.codes, v.allowedTypes...).Validate(ctx, sink); err != nil {
			return err
		}

		addressType, err := models.ParseAddressType(v.items[i].Type)
		if err != nil {
			continue
		}
		subType, err := models.ParseAddressSubType(v.items[i].SubType)
		if err != nil {
			continue
		}
		g, ok := groups[addressType]
		if !ok {
			g = &mix{}
			groups[addressType] = g
			order = append(order, addressType)
		}
		if subType == models.AddressSubTypeAbroad {
			g.abroad = true
		} else {
			g.other = true
		}
	}

	for _, addressType := range order {
		if g := groups[addressType]; g.abroad && g.other {
			sink.AddErrorf(v.property, msgForeignAddressMix, addressType)
		}
	}
	return nil
}

func joinTypes[T ~string](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}
