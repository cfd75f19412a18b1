package validators

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// OrganizationIDValidator checks that an organization id is a GUID of an
// existing organization.
type OrganizationIDValidator struct {
	value    *string
	path     string
	required bool
	orgs     OrganizationLookup
}

// NewOrganizationIDValidator validates value at path. A nil or empty value is valid unless Required.
func NewOrganizationIDValidator(value *string, path string, orgs OrganizationLookup) *OrganizationIDValidator {
	return &OrganizationIDValidator{value: value, path: path, orgs: orgs}
}

// Required makes a missing value a violation.
func (v *OrganizationIDValidator) Required() *OrganizationIDValidator {
	v.required = true
	return v
}

func (v *OrganizationIDValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	raw := deref(v.value)
	if raw == "" {
		if v.required {
			sink.AddErrorf(v.path, msgRequired, lastSegment(v.path))
		}
		return nil
	}
	id, ok := parseGUID(raw)
	if !ok {
		sink.AddErrorf(v.path, msgInvalidGUID, raw)
		return nil
	}
	return checkOrganization(ctx, v.orgs, id, v.path, sink)
}

// OrganizationListValidator checks a list of organization ids.
type OrganizationListValidator struct {
	ids      []string
	property string
	orgs     OrganizationLookup
}

// NewOrganizationListValidator validates ids reported at property[i].
func NewOrganizationListValidator(ids []string, property string, orgs OrganizationLookup) *OrganizationListValidator {
	return &OrganizationListValidator{ids: ids, property: property, orgs: orgs}
}

func (v *OrganizationListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	for i, raw := range v.ids {
		path := indexPath(v.property, i)
		id, ok := parseGUID(raw)
		if !ok {
			sink.AddErrorf(path, msgInvalidGUID, raw)
			continue
		}
		if err := checkOrganization(ctx, v.orgs, id, path, sink); err != nil {
			return err
		}
	}
	return nil
}

func checkOrganization(ctx context.Context, orgs OrganizationLookup, id uuid.UUID, path string, sink *ErrorSink) error {
	if orgs == nil {
		return fmt.Errorf("%w: organization lookup", ErrMissingDependency)
	}
	exists, err := orgs.OrganizationExists(ctx, id)
	if err != nil {
		return lookupError("organization", err)
	}
	if !exists {
		sink.AddErrorf(path, msgOrganizationNotFound, id)
	}
	return nil
}
