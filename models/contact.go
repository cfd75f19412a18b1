package models

// Phone is a language-tagged phone or fax number.
type Phone struct {
	// PrefixNumber is the international dial code (e.g. "+358"). It may be
	// omitted for national service numbers.
	PrefixNumber *string `json:"prefixNumber,omitempty"`

	// Number is the subscriber part of the number.
	Number string `json:"number"`

	// IsFinnishServiceNumber marks national service numbers without prefix.
	IsFinnishServiceNumber bool `json:"isFinnishServiceNumber"`

	// ServiceChargeType is one of Charged, Free or Other.
	ServiceChargeType string `json:"serviceChargeType,omitempty"`

	// ChargeDescription explains the charge when ServiceChargeType is Other.
	ChargeDescription string `json:"chargeDescription,omitempty"`

	// AdditionalInformation is free text shown next to the number.
	AdditionalInformation string `json:"additionalInformation,omitempty"`

	// Language is the ISO 639-1 language of the entry.
	Language string `json:"language"`
}

// LanguageCode implements the language accessor used by Languages.
func (p Phone) LanguageCode() string { return p.Language }

// Service charge types of a phone number.
const (
	ChargeTypeCharged = "Charged"
	ChargeTypeFree    = "Free"
	ChargeTypeOther   = "Other"
)

// Email is a language-tagged email address.
type Email struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language"`
}

// LanguageCode implements the language accessor used by Languages.
func (e Email) LanguageCode() string { return e.Language }

// WebPage is a language-tagged link.
type WebPage struct {
	URL         string `json:"url"`
	Value       string `json:"value,omitempty"`
	OrderNumber int    `json:"orderNumber,omitempty"`
	Language    string `json:"language"`
}

// LanguageCode implements the language accessor used by Languages.
func (w WebPage) LanguageCode() string { return w.Language }

// Law references a piece of legislation with localized names and links.
type Law struct {
	Names    []LanguageItem `json:"names,omitempty"`
	WebPages []WebPage      `json:"webPages,omitempty"`
}

// Attachment is a language-tagged document link of a channel.
type Attachment struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Language    string `json:"language"`
}

// LanguageCode implements the language accessor used by Languages.
func (a Attachment) LanguageCode() string { return a.Language }
