package models

import "time"

// Service hour types.
const (
	ServiceHourTypeStandard  = "Standard"
	ServiceHourTypeSpecial   = "Special"
	ServiceHourTypeException = "Exception"
)

// ServiceHour is a period of opening hours.
type ServiceHour struct {
	// ServiceHourType is Standard, Special or Exception.
	ServiceHourType string `json:"serviceHourType"`

	// ValidFrom and ValidTo bound the period; both are optional.
	ValidFrom *time.Time `json:"validFrom,omitempty"`
	ValidTo   *time.Time `json:"validTo,omitempty"`

	// IsClosed marks the whole period as closed.
	IsClosed bool `json:"isClosed"`

	// ValidForNow marks a period without an end date.
	ValidForNow bool `json:"validForNow"`

	AdditionalInformation []LanguageItem     `json:"additionalInformation,omitempty"`
	OpeningHour           []DailyOpeningTime `json:"openingHour,omitempty"`
}

// DailyOpeningTime is one opening interval of a day.
type DailyOpeningTime struct {
	// DayFrom is an English weekday name (e.g. "Monday").
	DayFrom string `json:"dayFrom"`

	// DayTo is set for intervals that end on another day.
	DayTo *string `json:"dayTo,omitempty"`

	// From and To are local times in HH:MM format.
	From string `json:"from"`
	To   string `json:"to"`

	// IsExtra marks additional intervals of the older hour shape, where every
	// day has exactly one main (IsExtra=false) interval.
	IsExtra bool `json:"isExtra"`
}
