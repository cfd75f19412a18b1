package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type channelRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChannelRepository constructs a [ChannelRepository] over "channels".
func NewChannelRepository(db *DB, log *logger.Logger) ChannelRepository {
	log.Debug().Msg("creating channel repository")
	return &channelRepository{db: db, logger: log}
}

func (r *channelRepository) NotExistingChannels(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return notExistingIDs(ctx, r.db, "*channelRepository.NotExistingChannels", "channels", ids)
}

// ChannelInfo returns nil when the channel does not exist.
func (r *channelRepository) ChannelInfo(ctx context.Context, id uuid.UUID) (*models.ChannelInfo, error) {
	q := r.db.builder.
		Select("id", "channel_type", "organization_id", "is_visible_for_all").
		From("channels").
		Where(sq.Eq{"id": id.String()}).
		Limit(1)

	rows, err := r.db.queryRows(ctx, "*channelRepository.ChannelInfo", q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rowsErr(rows.Err())
	}

	var (
		info        models.ChannelInfo
		channelType string
	)
	if err = rows.Scan(&info.ID, &channelType, &info.OrganizationID, &info.IsVisibleForAll); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	info.Type = models.ChannelType(channelType)

	return &info, nil
}

type serviceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewServiceRepository constructs a [ServiceRepository] over "services".
func NewServiceRepository(db *DB, log *logger.Logger) ServiceRepository {
	log.Debug().Msg("creating service repository")
	return &serviceRepository{db: db, logger: log}
}

func (r *serviceRepository) NotExistingServices(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return notExistingIDs(ctx, r.db, "*serviceRepository.NotExistingServices", "services", ids)
}

type generalDescriptionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGeneralDescriptionRepository constructs a [GeneralDescriptionRepository]
// over "general_descriptions" and its taxonomy links.
func NewGeneralDescriptionRepository(db *DB, log *logger.Logger) GeneralDescriptionRepository {
	log.Debug().Msg("creating general description repository")
	return &generalDescriptionRepository{db: db, logger: log}
}

// GeneralDescription returns nil when the description does not exist.
func (r *generalDescriptionRepository) GeneralDescription(ctx context.Context, id uuid.UUID) (*models.GeneralDescriptionInfo, error) {
	q := r.db.builder.
		Select("id", "publishing_status").
		From("general_descriptions").
		Where(sq.Eq{"id": id.String()}).
		Limit(1)

	rows, err := r.db.queryRows(ctx, "*generalDescriptionRepository.GeneralDescription", q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rowsErr(rows.Err())
	}

	var (
		info   models.GeneralDescriptionInfo
		status string
	)
	if err = rows.Scan(&info.ID, &status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if info.Status, err = models.ParsePublishingStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	rows.Close()

	links := r.db.builder.
		Select("kind", "uri").
		From("general_description_taxonomy").
		Where(sq.Eq{"general_description_id": id.String()}).
		OrderBy("kind", "uri")

	linkRows, err := r.db.queryRows(ctx, "*generalDescriptionRepository.GeneralDescription", links)
	if err != nil {
		return nil, err
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var kind, uri string
		if err = linkRows.Scan(&kind, &uri); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		switch models.TaxonomyKind(kind) {
		case models.TaxonomyServiceClass:
			info.ServiceClasses = append(info.ServiceClasses, uri)
		case models.TaxonomyTargetGroup:
			info.TargetGroups = append(info.TargetGroups, uri)
		}
	}
	if err = rowsErr(linkRows.Err()); err != nil {
		return nil, err
	}

	return &info, nil
}

// notExistingIDs returns the ids missing from table, in input order.
func notExistingIDs(ctx context.Context, db *DB, fn, table string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	q := db.builder.
		Select("id").
		From(table).
		Where(sq.Eq{"id": raw})

	found, err := db.column(ctx, fn, q)
	if err != nil {
		return nil, err
	}

	foundIDs := make([]uuid.UUID, 0, len(found))
	for _, s := range found {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foundIDs = append(foundIDs, id)
	}
	return missing(ids, foundIDs), nil
}

func rowsErr(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
