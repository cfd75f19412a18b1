package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// CodeKind selects the code table a CodeValidator resolves against.
type CodeKind string

const (
	CodeCountry      CodeKind = "Country"
	CodeMunicipality CodeKind = "Municipality"
	CodePostal       CodeKind = "Postal"
	CodeDial         CodeKind = "Dial"
	CodeLanguage     CodeKind = "Language"
)

// CodeValidator checks that a code exists in its code table.
type CodeValidator struct {
	code     string
	path     string
	kind     CodeKind
	codes    CodeLookup
	required bool
}

// NewCodeValidator validates code at path. An empty code is valid and is not looked up.
func NewCodeValidator(code, path string, kind CodeKind, codes CodeLookup) *CodeValidator {
	return &CodeValidator{code: strings.TrimSpace(code), path: path, kind: kind, codes: codes}
}

// Required makes an empty code a violation.
func (v *CodeValidator) Required() *CodeValidator {
	v.required = true
	return v
}

func (v *CodeValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if v.code == "" {
		if v.required {
			sink.AddErrorf(v.path, msgRequired, lastSegment(v.path))
		}
		return nil
	}
	if v.codes == nil {
		return fmt.Errorf("%w: code lookup", ErrMissingDependency)
	}

	exists, err := codeExists(ctx, v.codes, v.kind, v.code)
	if err != nil {
		return err
	}
	if !exists {
		sink.AddErrorf(v.path, msgCodeNotFound, v.kind, v.code)
	}
	return nil
}

func codeExists(ctx context.Context, codes CodeLookup, kind CodeKind, code string) (bool, error) {
	var (
		exists bool
		err    error
	)
	switch kind {
	case CodeCountry:
		exists, err = codes.CountryExists(ctx, code)
	case CodeMunicipality:
		exists, err = codes.MunicipalityExists(ctx, code)
	case CodePostal:
		exists, err = codes.PostalCodeExists(ctx, code)
	case CodeDial:
		exists, err = codes.DialCodeExists(ctx, code)
	case CodeLanguage:
		exists, err = codes.LanguageExists(ctx, code)
	default:
		return false, fmt.Errorf("%w: unknown code kind '%s'", ErrUnsupportedType, kind)
	}
	if err != nil {
		return false, lookupError("code "+string(kind), err)
	}
	return exists, nil
}

// MunicipalityCodeListValidator checks every municipality code of a list.
type MunicipalityCodeListValidator struct {
	codes    []string
	property string
	lookup   CodeLookup
}

// NewMunicipalityCodeListValidator validates codes reported at property[i].
func NewMunicipalityCodeListValidator(codes []string, property string, lookup CodeLookup) *MunicipalityCodeListValidator {
	return &MunicipalityCodeListValidator{codes: codes, property: property, lookup: lookup}
}

func (v *MunicipalityCodeListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	for i, code := range v.codes {
		if err := NewCodeValidator(code, indexPath(v.property, i), CodeMunicipality, v.lookup).Validate(ctx, sink); err != nil {
			return err
		}
	}
	return nil
}

// AreaListValidator checks the codes of one area against its area type.
type AreaListValidator struct {
	areaType models.AreaType
	codes    []string
	property string
	lookup   CodeLookup
}

// NewAreaListValidator validates codes of areaType reported at property[i].
func NewAreaListValidator(areaType models.AreaType, codes []string, property string, lookup CodeLookup) *AreaListValidator {
	return &AreaListValidator{areaType: areaType, codes: codes, property: property, lookup: lookup}
}

func (v *AreaListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.codes) == 0 {
		return nil
	}
	if v.areaType == models.AreaTypeMunicipality {
		return NewMunicipalityCodeListValidator(v.codes, v.property, v.lookup).Validate(ctx, sink)
	}
	if v.lookup == nil {
		return fmt.Errorf("%w: code lookup", ErrMissingDependency)
	}

	for i, code := range v.codes {
		code = strings.TrimSpace(code)
		if code == "" {
			sink.AddErrorf(indexPath(v.property, i), msgRequired, "Area code")
			continue
		}
		exists, err := v.lookup.AreaCodeExists(ctx, v.areaType, code)
		if err != nil {
			return lookupError("area code", err)
		}
		if !exists {
			sink.AddErrorf(indexPath(v.property, i), msgAreaCodeNotFound, code, v.areaType)
		}
	}
	return nil
}

func lookupError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLookupFailed, op, err)
}
