package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// NameSummaryValidator rejects a summary equal to the name of the same language.
type NameSummaryValidator struct {
	names        []models.LocalizedListItem
	descriptions []models.LocalizedListItem
	key          string
	enabled      bool
}

// NewNameSummaryValidator reports at key. It is active only when the policy asks for it.
func NewNameSummaryValidator(names, descriptions []models.LocalizedListItem, key string, policy Policy) *NameSummaryValidator {
	return &NameSummaryValidator{names: names, descriptions: descriptions, key: key, enabled: policy.NameSummaryDistinct}
}

func (v *NameSummaryValidator) Validate(_ context.Context, sink *ErrorSink) error {
	if !v.enabled {
		return nil
	}

	var reported []string
	for _, name := range v.names {
		if !strings.EqualFold(name.Type, models.NameTypeName) || slices.Contains(reported, name.Language) {
			continue
		}
		nameText := strings.TrimSpace(name.Value)
		if nameText == "" {
			continue
		}
		for _, d := range v.descriptions {
			if d.Language == name.Language && strings.EqualFold(d.Type, models.DescriptionTypeSummary) &&
				strings.EqualFold(strings.TrimSpace(d.Value), nameText) {
				sink.AddErrorf(v.key, msgSummaryEqualsName, name.Language)
				reported = append(reported, name.Language)
				break
			}
		}
	}
	return nil
}

// asNames converts untyped channel names to Name items.
func asNames(items []models.LanguageItem) []models.LocalizedListItem {
	if items == nil {
		return nil
	}
	out := make([]models.LocalizedListItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.LocalizedListItem{Type: models.NameTypeName, Value: item.Value, Language: item.Language})
	}
	return out
}
