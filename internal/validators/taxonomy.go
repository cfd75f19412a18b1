package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

var taxonomyLabels = map[models.TaxonomyKind]string{
	models.TaxonomyServiceClass:    "service classes",
	models.TaxonomyOntologyTerm:    "ontology terms",
	models.TaxonomyLifeEvent:       "life events",
	models.TaxonomyIndustrialClass: "industrial classes",
	models.TaxonomyTargetGroup:     "target groups",
}

// TaxonomyListValidator checks that every uri of a list exists in its
// vocabulary. Unknown uris are reported together at the list property.
type TaxonomyListValidator struct {
	kind     models.TaxonomyKind
	uris     []string
	property string
	maxCount int
	taxonomy TaxonomyLookup
}

// NewTaxonomyListValidator validates uris of kind. maxCount <= 0 means unlimited.
func NewTaxonomyListValidator(kind models.TaxonomyKind, uris []string, property string, maxCount int, taxonomy TaxonomyLookup) *TaxonomyListValidator {
	return &TaxonomyListValidator{kind: kind, uris: uris, property: property, maxCount: maxCount, taxonomy: taxonomy}
}

// NewOntologyTermListValidator validates ontology terms against the policy limit.
func NewOntologyTermListValidator(uris []string, property string, policy Policy, taxonomy TaxonomyLookup) *TaxonomyListValidator {
	return NewTaxonomyListValidator(models.TaxonomyOntologyTerm, uris, property, policy.MaxOntologyTerms, taxonomy)
}

// NewLifeEventListValidator validates life events against the policy limit.
func NewLifeEventListValidator(uris []string, property string, policy Policy, taxonomy TaxonomyLookup) *TaxonomyListValidator {
	return NewTaxonomyListValidator(models.TaxonomyLifeEvent, uris, property, policy.MaxLifeEvents, taxonomy)
}

// NewIndustrialClassListValidator validates industrial classes.
func NewIndustrialClassListValidator(uris []string, property string, taxonomy TaxonomyLookup) *TaxonomyListValidator {
	return NewTaxonomyListValidator(models.TaxonomyIndustrialClass, uris, property, 0, taxonomy)
}

// NewTargetGroupListValidator validates target groups.
func NewTargetGroupListValidator(uris []string, property string, taxonomy TaxonomyLookup) *TaxonomyListValidator {
	return NewTaxonomyListValidator(models.TaxonomyTargetGroup, uris, property, 0, taxonomy)
}

func (v *TaxonomyListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	uris := distinctNonEmpty(v.uris)
	if len(uris) == 0 {
		return nil
	}
	if v.maxCount > 0 && len(uris) > v.maxCount {
		sink.AddErrorf(v.property, msgTaxonomyMaxCount, v.maxCount, taxonomyLabels[v.kind])
	}
	_, err := v.resolve(ctx, uris, sink)
	return err
}

// resolve reports unknown uris and returns them.
func (v *TaxonomyListValidator) resolve(ctx context.Context, uris []string, sink *ErrorSink) ([]string, error) {
	if v.taxonomy == nil {
		return nil, fmt.Errorf("%w: taxonomy lookup", ErrMissingDependency)
	}
	missing, err := v.taxonomy.NotExistingURIs(ctx, v.kind, uris)
	if err != nil {
		return nil, lookupError("taxonomy "+string(v.kind), err)
	}
	if len(missing) > 0 {
		sink.AddErrorf(v.property, msgTaxonomyNotFound, taxonomyLabels[v.kind], strings.Join(missing, ", "))
	}
	return missing, nil
}

// ServiceClassListValidator checks service classes, their count including
// the classes of an attached general description, and the main-class rule.
type ServiceClassListValidator struct {
	uris                  []string
	property              string
	policy                Policy
	generalDescriptionCnt int
	taxonomy              TaxonomyLookup
}

// NewServiceClassListValidator validates uris. generalDescriptionClassCount
// is the number of classes already attached through a general description.
func NewServiceClassListValidator(uris []string, property string, policy Policy, generalDescriptionClassCount int, taxonomy TaxonomyLookup) *ServiceClassListValidator {
	return &ServiceClassListValidator{
		uris:                  uris,
		property:              property,
		policy:                policy,
		generalDescriptionCnt: generalDescriptionClassCount,
		taxonomy:              taxonomy,
	}
}

func (v *ServiceClassListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	uris := distinctNonEmpty(v.uris)
	if len(uris) == 0 {
		return nil
	}

	limit := max(v.policy.MaxServiceClasses-v.generalDescriptionCnt, 0)
	if len(uris) > limit {
		if v.generalDescriptionCnt > 0 {
			sink.AddErrorf(v.property, msgServiceClassMax, limit, v.generalDescriptionCnt)
		} else {
			sink.AddErrorf(v.property, msgTaxonomyMaxCount, limit, taxonomyLabels[models.TaxonomyServiceClass])
		}
	}

	base := NewTaxonomyListValidator(models.TaxonomyServiceClass, uris, v.property, 0, v.taxonomy)
	missing, err := base.resolve(ctx, uris, sink)
	if err != nil || len(missing) > 0 || !v.policy.RejectMainOnlyServiceClasses {
		return err
	}

	mains, err := v.taxonomy.MainServiceClasses(ctx, uris)
	if err != nil {
		return lookupError("main service classes", err)
	}
	for _, uri := range uris {
		if !slices.Contains(mains, uri) {
			return nil
		}
	}
	sink.AddErrorf(v.property, msgMainClassesOnly, strings.Join(uris, ", "))
	return nil
}

func distinctNonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" && !slices.Contains(out, value) {
			out = append(out, value)
		}
	}
	return out
}
