package models

// LanguageItem is a single localized text value.
type LanguageItem struct {
	// Value is the localized text.
	Value string `json:"value"`

	// Language is the ISO 639-1 code of Value (e.g. "fi", "sv", "en").
	Language string `json:"language"`
}

// LocalizedListItem is a localized text value tagged with a type, used for
// names (Name, AlternativeName) and descriptions (Description, Summary, ...).
type LocalizedListItem struct {
	// Type discriminates the text role within the list.
	Type string `json:"type"`

	// Value is the localized text.
	Value string `json:"value"`

	// Language is the ISO 639-1 code of Value.
	Language string `json:"language"`
}

// Name and description type tags shared by all entities.
const (
	NameTypeName            = "Name"
	NameTypeAlternativeName = "AlternativeName"

	DescriptionTypeDescription               = "Description"
	DescriptionTypeSummary                   = "Summary"
	DescriptionTypeUserInstruction           = "UserInstruction"
	DescriptionTypeChargeTypeAdditionalInfo  = "ChargeTypeAdditionalInfo"
	DescriptionTypeDeadLine                  = "DeadLine"
	DescriptionTypeProcessingTime            = "ProcessingTime"
	DescriptionTypeValidityTime              = "ValidityTime"
	DescriptionTypeBackgroundDescription     = "BackgroundDescription"
	DescriptionTypeGeneralDescriptionTypeAdd = "GeneralDescriptionTypeAdditionalInformation"
)

// Languages collects the distinct languages of the given lists in first-seen order.
func Languages[T interface{ LanguageCode() string }](lists ...[]T) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, item := range list {
			lang := item.LanguageCode()
			if lang == "" {
				continue
			}
			if _, ok := seen[lang]; ok {
				continue
			}
			seen[lang] = struct{}{}
			out = append(out, lang)
		}
	}
	return out
}

// LanguageCode implements the language accessor used by Languages.
func (i LanguageItem) LanguageCode() string { return i.Language }

// LanguageCode implements the language accessor used by Languages.
func (i LocalizedListItem) LanguageCode() string { return i.Language }
