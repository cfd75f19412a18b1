package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var taxonomyColumns = []string{"id", "parent_id", "uri", "code"}

type taxonomyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTaxonomyRepository constructs a [TaxonomyRepository] over the
// "taxonomy_items" table.
func NewTaxonomyRepository(db *DB, log *logger.Logger) TaxonomyRepository {
	log.Debug().Msg("creating taxonomy repository")
	return &taxonomyRepository{db: db, logger: log}
}

func (r *taxonomyRepository) NotExistingURIs(ctx context.Context, kind models.TaxonomyKind, uris []string) ([]string, error) {
	if len(uris) == 0 {
		return nil, nil
	}

	q := r.db.builder.
		Select("uri").
		From("taxonomy_items").
		Where(sq.And{sq.Eq{"kind": string(kind)}, sq.Eq{"uri": uris}})

	found, err := r.db.column(ctx, "*taxonomyRepository.NotExistingURIs", q)
	if err != nil {
		return nil, err
	}
	return missing(uris, found), nil
}

func (r *taxonomyRepository) TaxonomyItem(ctx context.Context, kind models.TaxonomyKind, uri string) (*models.TaxonomyItem, error) {
	q := r.db.builder.
		Select(taxonomyColumns...).
		From("taxonomy_items").
		Where(sq.And{sq.Eq{"kind": string(kind)}, sq.Eq{"uri": uri}})

	return r.item(ctx, "*taxonomyRepository.TaxonomyItem", q)
}

func (r *taxonomyRepository) TaxonomyItemByID(ctx context.Context, kind models.TaxonomyKind, id uuid.UUID) (*models.TaxonomyItem, error) {
	q := r.db.builder.
		Select(taxonomyColumns...).
		From("taxonomy_items").
		Where(sq.And{sq.Eq{"kind": string(kind)}, sq.Eq{"id": id.String()}})

	return r.item(ctx, "*taxonomyRepository.TaxonomyItemByID", q)
}

// MainServiceClasses returns the uris that are top-level service classes,
// in input order.
func (r *taxonomyRepository) MainServiceClasses(ctx context.Context, uris []string) ([]string, error) {
	if len(uris) == 0 {
		return nil, nil
	}

	q := r.db.builder.
		Select("uri").
		From("taxonomy_items").
		Where(sq.And{
			sq.Eq{"kind": string(models.TaxonomyServiceClass)},
			sq.Eq{"parent_id": nil},
			sq.Eq{"uri": uris},
		})

	found, err := r.db.column(ctx, "*taxonomyRepository.MainServiceClasses", q)
	if err != nil {
		return nil, err
	}

	var main []string
	for _, uri := range uris {
		if slices.Contains(found, uri) && !slices.Contains(main, uri) {
			main = append(main, uri)
		}
	}
	return main, nil
}

// item returns nil when q matches no row.
func (r *taxonomyRepository) item(ctx context.Context, fn string, q sq.SelectBuilder) (*models.TaxonomyItem, error) {
	rows, err := r.db.queryRows(ctx, fn, q.Limit(1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rowsErr(rows.Err())
	}

	var (
		item   models.TaxonomyItem
		parent uuid.NullUUID
	)
	if err = rows.Scan(&item.ID, &parent, &item.URI, &item.Code); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if parent.Valid {
		item.ParentID = &parent.UUID
	}

	return &item, nil
}

// missing returns the values of want absent from found, without duplicates
// and in the order of want.
func missing[T comparable](want, found []T) []T {
	var out []T
	for _, v := range want {
		if !slices.Contains(found, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
