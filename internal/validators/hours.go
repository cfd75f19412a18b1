package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-registry-validator/models"
)

var weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// ServiceHourListValidator checks a list of service hours and their daily
// opening times.
type ServiceHourListValidator struct {
	items    []models.ServiceHour
	property string
	policy   Policy
}

// NewServiceHourListValidator validates items at property[i].
func NewServiceHourListValidator(items []models.ServiceHour, property string, policy Policy) *ServiceHourListValidator {
	return &ServiceHourListValidator{items: items, property: property, policy: policy}
}

func (v *ServiceHourListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	for i, hour := range v.items {
		path := indexPath(v.property, i)

		err := runAll(ctx, sink,
			NewDateRangeValidator(hour.ValidFrom, hour.ValidTo, path),
			NewEnumValidator(hour.ServiceHourType, path+".ServiceHourType",
				models.ServiceHourTypeStandard, models.ServiceHourTypeSpecial, models.ServiceHourTypeException).Required(),
			NewLocalizedListValidator(hour.AdditionalInformation, path+".AdditionalInformation", LanguageOptions{}),
		)
		if err != nil {
			return err
		}

		if strings.EqualFold(hour.ServiceHourType, models.ServiceHourTypeSpecial) ||
			strings.EqualFold(hour.ServiceHourType, models.ServiceHourTypeException) {
			switch n := len(hour.OpeningHour); {
			case n == 0:
				sink.AddErrorf(path+".OpeningHour", msgOpeningHourRequired, hour.ServiceHourType)
			case n > 1:
				sink.AddErrorf(path+".OpeningHour", msgOpeningHourSingle, hour.ServiceHourType)
			}
		}

		for j, opening := range hour.OpeningHour {
			validateOpeningTime(opening, indexPath(path+".OpeningHour", j), hour.IsClosed, sink)
		}

		if v.policy.RequireMainOpeningHour {
			validateMainOpeningHours(hour.OpeningHour, path+".OpeningHour", sink)
		}
	}
	return nil
}

func validateOpeningTime(t models.DailyOpeningTime, path string, closed bool, sink *ErrorSink) {
	if !isWeekday(t.DayFrom) {
		sink.AddErrorf(path+".DayFrom", msgInvalidWeekday, t.DayFrom)
	}
	dayTo := deref(t.DayTo)
	if dayTo != "" && !isWeekday(dayTo) {
		sink.AddErrorf(path+".DayTo", msgInvalidWeekday, dayTo)
	}

	if closed && t.From == "" && t.To == "" {
		return
	}
	from, okFrom := parseClock(t.From)
	if !okFrom {
		sink.AddErrorf(path+".From", msgInvalidTime, t.From)
	}
	to, okTo := parseClock(t.To)
	if !okTo {
		sink.AddErrorf(path+".To", msgInvalidTime, t.To)
	}

	overnight := dayTo != "" && !strings.EqualFold(dayTo, t.DayFrom)
	if okFrom && okTo && !overnight && to < from {
		sink.AddError(path+".To", msgTimeOrder)
	}
}

// validateMainOpeningHours requires exactly one non-extra entry per day.
func validateMainOpeningHours(times []models.DailyOpeningTime, path string, sink *ErrorSink) {
	var days []string
	mains := make(map[string]int)
	for _, t := range times {
		day := strings.TrimSpace(t.DayFrom)
		if _, ok := mains[day]; !ok {
			days = append(days, day)
			mains[day] = 0
		}
		if !t.IsExtra {
			mains[day]++
		}
	}
	for _, day := range days {
		if mains[day] != 1 {
			sink.AddErrorf(path, msgMainOpeningHour, day, mains[day])
		}
	}
}

func isWeekday(day string) bool {
	return containsFold(weekdays, strings.TrimSpace(day))
}

// parseClock converts HH:MM to minutes since midnight. "24:00" is the end of day.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "24:00" {
		return 24 * 60, true
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
