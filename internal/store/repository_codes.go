package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
	sq "github.com/Masterminds/squirrel"
)

// CodeKind names one code table. Area codes use the area type names.
type CodeKind string

const (
	CodeCountry        CodeKind = "Country"
	CodeMunicipality   CodeKind = "Municipality"
	CodePostalCode     CodeKind = "PostalCode"
	CodeDialCode       CodeKind = "DialCode"
	CodeLanguage       CodeKind = "Language"
	CodeProvince       CodeKind = CodeKind(models.AreaTypeProvince)
	CodeBusinessRegion CodeKind = CodeKind(models.AreaTypeBusinessRegions)
	CodeHospitalRegion CodeKind = CodeKind(models.AreaTypeHospitalRegions)
)

// areaCodeKind maps an area type to the table holding its codes.
func areaCodeKind(areaType models.AreaType) (CodeKind, error) {
	switch areaType {
	case models.AreaTypeMunicipality:
		return CodeMunicipality, nil
	case models.AreaTypeProvince:
		return CodeProvince, nil
	case models.AreaTypeBusinessRegions:
		return CodeBusinessRegion, nil
	case models.AreaTypeHospitalRegions:
		return CodeHospitalRegion, nil
	}
	return "", fmt.Errorf("no code table for area type '%s'", areaType)
}

type codeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCodeRepository constructs a [CodeRepository] over the "codes" table.
func NewCodeRepository(db *DB, log *logger.Logger) CodeRepository {
	log.Debug().Msg("creating code repository")
	return &codeRepository{db: db, logger: log}
}

func (r *codeRepository) CountryExists(ctx context.Context, code string) (bool, error) {
	return r.codeExists(ctx, CodeCountry, code)
}

func (r *codeRepository) MunicipalityExists(ctx context.Context, code string) (bool, error) {
	return r.codeExists(ctx, CodeMunicipality, code)
}

func (r *codeRepository) PostalCodeExists(ctx context.Context, code string) (bool, error) {
	return r.codeExists(ctx, CodePostalCode, code)
}

func (r *codeRepository) DialCodeExists(ctx context.Context, code string) (bool, error) {
	return r.codeExists(ctx, CodeDialCode, code)
}

func (r *codeRepository) LanguageExists(ctx context.Context, code string) (bool, error) {
	return r.codeExists(ctx, CodeLanguage, code)
}

func (r *codeRepository) AreaCodeExists(ctx context.Context, areaType models.AreaType, code string) (bool, error) {
	kind, err := areaCodeKind(areaType)
	if err != nil {
		return false, err
	}
	return r.codeExists(ctx, kind, code)
}

func (r *codeRepository) codeExists(ctx context.Context, kind CodeKind, code string) (bool, error) {
	q := r.db.builder.
		Select("1").
		From("codes").
		Where(sq.And{sq.Eq{"kind": string(kind)}, sq.Eq{"code": code}})

	return r.db.exists(ctx, "*codeRepository.codeExists", q)
}

// AllCodes loads every code table in one query.
func (r *codeRepository) AllCodes(ctx context.Context) (map[CodeKind][]string, error) {
	q := r.db.builder.
		Select("kind", "code").
		From("codes").
		OrderBy("kind", "code")

	rows, err := r.db.queryRows(ctx, "*codeRepository.AllCodes", q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make(map[CodeKind][]string)
	for rows.Next() {
		var kind, code string
		if err = rows.Scan(&kind, &code); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		codes[CodeKind(kind)] = append(codes[CodeKind(kind)], code)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codes, nil
}
