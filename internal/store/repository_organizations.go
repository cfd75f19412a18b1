package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// maxOrganizationDepth bounds the walk up the organization tree.
const maxOrganizationDepth = 10

type organizationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOrganizationRepository constructs an [OrganizationRepository] over
// "organizations" and "organization_languages".
func NewOrganizationRepository(db *DB, log *logger.Logger) OrganizationRepository {
	log.Debug().Msg("creating organization repository")
	return &organizationRepository{db: db, logger: log}
}

func (r *organizationRepository) OrganizationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := r.db.builder.
		Select("1").
		From("organizations").
		Where(sq.Eq{"id": id.String()})

	return r.db.exists(ctx, "*organizationRepository.OrganizationExists", q)
}

// UserOrganizationLanguages returns the languages of organizationID. With a
// non-nil userOrganizationIDs the organization must be one of them or one of
// their sub-organizations, otherwise [ErrOrganizationNotInScope] is returned.
func (r *organizationRepository) UserOrganizationLanguages(ctx context.Context, organizationID uuid.UUID, userOrganizationIDs []uuid.UUID) ([]string, error) {
	log := logger.FromContext(ctx)

	if userOrganizationIDs != nil {
		inScope, err := r.inScope(ctx, organizationID, userOrganizationIDs)
		if err != nil {
			return nil, err
		}
		if !inScope {
			log.Debug().
				Str("func", "*organizationRepository.UserOrganizationLanguages").
				Str("organization_id", organizationID.String()).
				Msg("organization is out of user scope")
			return nil, fmt.Errorf("%w: %s", ErrOrganizationNotInScope, organizationID)
		}
	}

	q := r.db.builder.
		Select("language").
		From("organization_languages").
		Where(sq.Eq{"organization_id": organizationID.String()}).
		OrderBy("language")

	return r.db.column(ctx, "*organizationRepository.UserOrganizationLanguages", q)
}

// inScope walks from id towards the root of the organization tree and
// reports whether one of the visited organizations belongs to the user.
func (r *organizationRepository) inScope(ctx context.Context, id uuid.UUID, userOrganizationIDs []uuid.UUID) (bool, error) {
	current := id
	for depth := 0; depth < maxOrganizationDepth; depth++ {
		if slices.Contains(userOrganizationIDs, current) {
			return true, nil
		}

		q := r.db.builder.
			Select("parent_organization_id").
			From("organizations").
			Where(sq.Eq{"id": current.String()}).
			Limit(1)

		rows, err := r.db.queryRows(ctx, "*organizationRepository.inScope", q)
		if err != nil {
			return false, err
		}

		var parent uuid.NullUUID
		found := rows.Next()
		if found {
			err = rows.Scan(&parent)
		}
		if err == nil {
			err = rows.Err()
		}
		_ = rows.Close()

		switch {
		case err != nil:
			return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		case !found && depth == 0:
			return false, fmt.Errorf("%w: %s", ErrOrganizationNotFound, id)
		case !found || !parent.Valid:
			return false, nil
		}

		current = parent.UUID
	}
	return false, nil
}
