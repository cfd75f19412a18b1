package validators

import (
	"context"
	"strings"
)

var businessCodeWeights = [7]int{7, 9, 10, 5, 8, 4, 2}

// BusinessCodeValidator checks a Finnish business id (NNNNNNN-C) and its check digit.
type BusinessCodeValidator struct {
	code string
	path string
}

// NewBusinessCodeValidator validates code at path. An empty code is valid.
func NewBusinessCodeValidator(code, path string) *BusinessCodeValidator {
	return &BusinessCodeValidator{code: strings.TrimSpace(code), path: path}
}

func (v *BusinessCodeValidator) Validate(_ context.Context, sink *ErrorSink) error {
	if v.code == "" {
		return nil
	}
	if !validBusinessCode(v.code) {
		sink.AddErrorf(v.path, msgBusinessCode, v.code)
	}
	return nil
}

func validBusinessCode(code string) bool {
	if len(code) != 9 || code[7] != '-' {
		return false
	}
	sum := 0
	for i := 0; i < 7; i++ {
		d := code[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * businessCodeWeights[i]
	}
	check := code[8]
	if check < '0' || check > '9' {
		return false
	}

	remainder := sum % 11
	switch remainder {
	case 0:
		return check == '0'
	case 1:
		return false
	}
	return int(check-'0') == 11-remainder
}
