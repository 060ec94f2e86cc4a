package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
)

const preferencesTable = "preferences"

// sqlPreferenceStore keeps preferences in the preferences table of the note
// database.
type sqlPreferenceStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLPreferenceStore constructs a [PreferenceStore] backed by db.
func NewSQLPreferenceStore(db *DB, logger *logger.Logger) PreferenceStore {
	return &sqlPreferenceStore{db: db, logger: logger}
}

func (s *sqlPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.db.builder().
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlPreferenceStore.Get").Str("key", key).Msg("error reading preference")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

// Put upserts every value inside one transaction.
func (s *sqlPreferenceStore) Put(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return s.db.withRetry(ctx, func() (err error) {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*sqlPreferenceStore.Put").Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		// sorted keys keep statement order stable
		for _, key := range slices.Sorted(maps.Keys(values)) {
			query, args, buildErr := s.db.builder().
				Insert(preferencesTable).
				Columns("key", "value").
				Values(key, values[key]).
				Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).Str("func", "*sqlPreferenceStore.Put").Str("key", key).Msg("error writing preference")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (s *sqlPreferenceStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := s.db.builder().
		Delete(preferencesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlPreferenceStore.Remove").Msg("error removing preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
