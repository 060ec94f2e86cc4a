// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/models"
)

const notesTable = "notes"

var noteColumns = []string{
	"id",
	"public_title",
	"private_title",
	"private_content",
	"created_at",
	"cipher_context",
}

// noteRepository is the SQL implementation of [NoteRepository] shared by the
// SQLite and PostgreSQL handles.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// InsertNote implements [NoteRepository].
//
// Error handling:
//   - unique violation on id → [ErrNoteAlreadyExists];
//   - zero affected rows → [ErrNoteNotSaved];
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *noteRepository) InsertNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			nullableString(note.PublicTitle),
			nullableField(note.PrivateTitle),
			[]byte(note.PrivateContent),
			note.CreatedAt,
			note.CipherContext,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.InsertNote").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr := res.RowsAffected()
		if execErr != nil {
			return execErr
		}
		if affected == 0 {
			return ErrNoteNotSaved
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoteNotSaved):
		log.Error().Str("func", "*noteRepository.InsertNote").Str("id", note.ID).Msg("note was not saved")
		return err
	case r.db.isConflict(err):
		log.Warn().Str("func", "*noteRepository.InsertNote").Str("id", note.ID).Msg("note already exists")
		return ErrNoteAlreadyExists
	default:
		log.Err(err).Str("func", "*noteRepository.InsertNote").Str("id", note.ID).Msg("error inserting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// GetNote implements [NoteRepository].
func (r *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Str("id", id).Msg("error scanning note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetAllNotes implements [NoteRepository].
func (r *noteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error querying notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.GetAllNotes").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// DeleteNote implements [NoteRepository].
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("id", id).Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note         models.Note
		publicTitle  sql.NullString
		privateTitle []byte
		content      []byte
		createdAt    time.Time
	)

	if err := row.Scan(&note.ID, &publicTitle, &privateTitle, &content, &createdAt, &note.CipherContext); err != nil {
		return models.Note{}, err
	}

	if publicTitle.Valid {
		note.PublicTitle = &publicTitle.String
	}
	if privateTitle != nil {
		field := models.EncryptedField(privateTitle)
		note.PrivateTitle = &field
	}
	note.PrivateContent = content
	note.CreatedAt = createdAt.UTC()

	return note, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableField(f *models.EncryptedField) any {
	if f == nil {
		return nil
	}
	return []byte(*f)
}
