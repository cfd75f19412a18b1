package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// PhoneListValidator checks a localized list of phone numbers.
type PhoneListValidator struct {
	items    []models.Phone
	property string
	opts     LanguageOptions
	codes    CodeLookup
}

// NewPhoneListValidator validates items under property with the language options of opts.
func NewPhoneListValidator(items []models.Phone, property string, opts LanguageOptions, codes CodeLookup) *PhoneListValidator {
	return &PhoneListValidator{items: items, property: property, opts: opts, codes: codes}
}

func (v *PhoneListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if err := NewLocalizedListValidator(v.items, v.property, v.opts).Validate(ctx, sink); err != nil {
		return err
	}

	for i, phone := range v.items {
		path := indexPath(v.property, i)

		if strings.TrimSpace(phone.Number) == "" {
			sink.AddErrorf(path+".Number", msgRequired, "Number")
		}

		if prefix := deref(phone.PrefixNumber); prefix != "" {
			if v.codes == nil {
				return fmt.Errorf("%w: code lookup", ErrMissingDependency)
			}
			exists, err := codeExists(ctx, v.codes, CodeDial, prefix)
			if err != nil {
				return err
			}
			if !exists {
				sink.AddErrorf(path+".PrefixNumber", msgDialCodeNotFound, prefix)
			}
		}

		chargeType := NewEnumValidator(phone.ServiceChargeType, path+".ServiceChargeType",
			models.ChargeTypeCharged, models.ChargeTypeFree, models.ChargeTypeOther)
		if err := chargeType.Validate(ctx, sink); err != nil {
			return err
		}
		if strings.EqualFold(phone.ServiceChargeType, models.ChargeTypeOther) && strings.TrimSpace(phone.ChargeDescription) == "" {
			sink.AddErrorf(path+".ChargeDescription", msgChargeDescription, models.ChargeTypeOther)
		}
	}
	return nil
}
