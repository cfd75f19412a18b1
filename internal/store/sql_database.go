package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Supported values of config.DB.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// maxQueryAttempts bounds how often a retryable lookup query is repeated.
const maxQueryAttempts = 3

var retryDelay = 100 * time.Millisecond

// DB is an open lookup database together with the query builder and the
// error classifier matching its driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.Driver. An empty driver means
// postgres. When cfg.Migrate is set the embedded migrations are applied.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
			return nil, errors.Join(err, db.Close())
		}
		log.Info().Str("func", "NewDB").Msg("migrations applied")
	}

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// queryRows builds q and runs it, repeating retryable failures.
func (db *DB) queryRows(ctx context.Context, fn string, q sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := q.ToSql()
	if err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	log := logger.FromContext(ctx)
	for attempt := 1; ; attempt++ {
		rows, err := db.QueryContext(ctx, query, args...)
		if err == nil {
			return rows, nil
		}

		if attempt >= maxQueryAttempts || db.classify(err) != Retryable {
			log.Err(err).Str("func", fn).Str("code", postgresError(err)).Int("attempt", attempt).Msg("error executing query")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		log.Warn().Err(err).Str("func", fn).Int("attempt", attempt).Msg("retrying query")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, ctx.Err())
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}
}

// exists reports whether q returns at least one row.
func (db *DB) exists(ctx context.Context, fn string, q sq.SelectBuilder) (bool, error) {
	rows, err := db.queryRows(ctx, fn, q.Limit(1))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return found, nil
}

// column returns the single text column of every row of q.
func (db *DB) column(ctx context.Context, fn string, q sq.SelectBuilder) ([]string, error) {
	rows, err := db.queryRows(ctx, fn, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return values, nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
