package validators

import (
	"context"
	"strings"
)

// EnumValidator checks membership of a raw value in a closed set.
type EnumValidator struct {
	value    string
	path     string
	allowed  []string
	required bool
}

// NewEnumValidator validates value at path. An empty value is valid unless Required.
func NewEnumValidator(value, path string, allowed ...string) *EnumValidator {
	return &EnumValidator{value: strings.TrimSpace(value), path: path, allowed: allowed}
}

// Required makes an empty value a violation.
func (v *EnumValidator) Required() *EnumValidator {
	v.required = true
	return v
}

func (v *EnumValidator) Validate(_ context.Context, sink *ErrorSink) error {
	if v.value == "" {
		if v.required {
			sink.AddErrorf(v.path, msgRequired, lastSegment(v.path))
		}
		return nil
	}
	if !containsFold(v.allowed, v.value) {
		sink.AddErrorf(v.path, msgInvalidEnum, v.value, strings.Join(v.allowed, ", "))
	}
	return nil
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
