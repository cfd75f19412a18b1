package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-registry-validator/models"
)

// TargetGroupGateValidator checks that life events and industrial classes
// are attached only together with a matching target group.
//
// Life events require a target group that is, or descends from, KR1.
// Industrial classes require KR2.
type TargetGroupGateValidator struct {
	lifeEvents        []string
	industrialClasses []string
	targetGroups      []string
	taxonomy          TaxonomyLookup
}

// NewTargetGroupGateValidator builds the gate. The effective target groups
// are targetGroups, or currentTargetGroups when the candidate omits them,
// together with the target groups of an attached general description.
func NewTargetGroupGateValidator(
	lifeEvents, industrialClasses, targetGroups, currentTargetGroups, generalDescriptionTargetGroups []string,
	taxonomy TaxonomyLookup,
) *TargetGroupGateValidator {
	effective := targetGroups
	if effective == nil {
		effective = currentTargetGroups
	}
	return &TargetGroupGateValidator{
		lifeEvents:        distinctNonEmpty(lifeEvents),
		industrialClasses: distinctNonEmpty(industrialClasses),
		targetGroups:      unionOf(effective, generalDescriptionTargetGroups),
		taxonomy:          taxonomy,
	}
}

func (v *TargetGroupGateValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if len(v.lifeEvents) == 0 && len(v.industrialClasses) == 0 {
		return nil
	}
	if v.taxonomy == nil {
		return fmt.Errorf("%w: taxonomy lookup", ErrMissingDependency)
	}

	roots, err := v.ancestorCodes(ctx)
	if err != nil {
		return err
	}
	if len(v.lifeEvents) > 0 && !slices.Contains(roots, models.TargetGroupCitizens) {
		sink.AddErrorf("LifeEvents", msgTargetGroupMissing, "Life events", models.TargetGroupCitizens, "Citizens")
	}
	if len(v.industrialClasses) > 0 && !slices.Contains(roots, models.TargetGroupBusinesses) {
		sink.AddErrorf("IndustrialClasses", msgTargetGroupMissing, "Industrial classes", models.TargetGroupBusinesses, "Businesses and non-government organizations")
	}
	return nil
}

// ancestorCodes returns the codes of every effective target group and of
// its ancestors, walking at most MaxTaxonomyDepth parent links per group.
func (v *TargetGroupGateValidator) ancestorCodes(ctx context.Context) ([]string, error) {
	var codes []string
	for _, uri := range v.targetGroups {
		item, err := v.taxonomy.TaxonomyItem(ctx, models.TaxonomyTargetGroup, uri)
		if err != nil {
			return nil, lookupError("target group", err)
		}

		for depth := 0; item != nil && depth < MaxTaxonomyDepth; depth++ {
			if !slices.Contains(codes, item.Code) {
				codes = append(codes, item.Code)
			}
			if item.ParentID == nil {
				break
			}
			item, err = v.taxonomy.TaxonomyItemByID(ctx, models.TaxonomyTargetGroup, *item.ParentID)
			if err != nil {
				return nil, lookupError("target group parent", err)
			}
		}
	}
	return codes, nil
}
