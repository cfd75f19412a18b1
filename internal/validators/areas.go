package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
)

// AreaAndTypeValidator checks the area information of an entity: whole
// country types carry no areas, AreaType needs at least one area.
type AreaAndTypeValidator struct {
	areaType string
	areas    []models.Area
	codes    CodeLookup
}

// NewAreaAndTypeValidator validates areaType at "AreaType" and areas at "Areas".
func NewAreaAndTypeValidator(areaType string, areas []models.Area, codes CodeLookup) *AreaAndTypeValidator {
	return &AreaAndTypeValidator{areaType: strings.TrimSpace(areaType), areas: areas, codes: codes}
}

func (v *AreaAndTypeValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if v.areaType == "" {
		if len(v.areas) > 0 {
			sink.AddError("AreaType", msgAreaTypeRequired)
		}
		return nil
	}

	infoType, err := models.ParseAreaInformationType(v.areaType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAreaType, err)
	}

	switch infoType {
	case models.AreaInformationWholeCountry, models.AreaInformationWholeCountryExceptAlandIslands:
		if hasAreaCodes(v.areas) {
			sink.AddErrorf("Areas", msgAreasNotAllowed, infoType)
		}
		return nil
	}

	if len(v.areas) == 0 {
		sink.AddErrorf("Areas", msgAreasRequired, infoType)
		return nil
	}

	for i, area := range v.areas {
		path := indexPath("Areas", i)
		areaType, err := models.ParseAreaType(area.Type)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAreaType, err)
		}
		if len(area.AreaCodes) == 0 {
			sink.AddError(path+".AreaCodes", msgAreaCodesRequired)
			continue
		}
		if err := NewAreaListValidator(areaType, area.AreaCodes, path+".AreaCodes", v.codes).Validate(ctx, sink); err != nil {
			return err
		}
	}
	return nil
}

func hasAreaCodes(areas []models.Area) bool {
	for _, area := range areas {
		if len(area.AreaCodes) > 0 {
			return true
		}
	}
	return false
}
