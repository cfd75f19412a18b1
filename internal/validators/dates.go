package validators

import (
	"context"
	"time"
)

// DateRangeValidator checks that to is not earlier than from.
type DateRangeValidator struct {
	from, to *time.Time
	path     string
}

// NewDateRangeValidator reports a reversed range at path. Open ranges are valid.
func NewDateRangeValidator(from, to *time.Time, path string) *DateRangeValidator {
	return &DateRangeValidator{from: from, to: to, path: path}
}

func (v *DateRangeValidator) Validate(_ context.Context, sink *ErrorSink) error {
	if v.from == nil || v.to == nil {
		return nil
	}
	if v.to.Before(*v.from) {
		sink.AddError(v.path, msgDateOrder)
	}
	return nil
}
