package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/migrations"
)

// maxAttempts bounds withRetry.
const maxAttempts = 3

// DB is the explicitly constructed database handle shared by the
// repositories. SQLite handles use a single connection so all writes are
// serialized; PostgreSQL handles use a bounded pool.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies pending schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel builder using the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	return err
}

// isConflict reports whether err is a unique key violation.
func (db *DB) isConflict(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Conflict
}
