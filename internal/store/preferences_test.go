package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/migrations"
)

func newTestPreferenceStore(t *testing.T) (*sqlPreferenceStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &sqlPreferenceStore{
		db: &DB{
			DB:                 conn,
			dialect:            migrations.DialectSQLite,
			errorClassificator: NewSQLiteErrorClassifier(),
			logger:             logger.Nop(),
		},
		logger: logger.Nop(),
	}, mock
}

func TestSQLPreferenceStore_GetMissing(t *testing.T) {
	s, mock := newTestPreferenceStore(t)

	mock.ExpectQuery("SELECT value FROM preferences WHERE key = \\?").
		WithArgs("password").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, ok, err := s.Get(context.Background(), "password")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLPreferenceStore_PutIsTransactional(t *testing.T) {
	s, mock := newTestPreferenceStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("password", "abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("password_hashing_method", "SHA-512").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.Put(context.Background(), map[string]string{
		"password":                "abc",
		"password_hashing_method": "SHA-512",
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_RemoveUsesIn(t *testing.T) {
	s, mock := newTestPreferenceStore(t)

	mock.ExpectExec("DELETE FROM preferences WHERE key IN \\(\\?,\\?\\)").
		WithArgs("a", "b").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, s.Remove(context.Background(), "a", "b"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilePreferenceStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	ctx := context.Background()

	s, err := NewFilePreferenceStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, map[string]string{"password": "h", "delay_time": "42"}))
	require.NoError(t, s.Remove(ctx, "delay_time", "missing"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFilePreferenceStore(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "password")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "h", v)

	_, ok, err = reopened.Get(ctx, "delay_time")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilePreferenceStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFilePreferenceStore(path)
	assert.Error(t, err)
}

func TestFilePreferenceStore_InMemory(t *testing.T) {
	s, err := NewFilePreferenceStore("")
	require.NoError(t, err)
	require.NoError(t, s.Put(context.Background(), map[string]string{"k": "v"}))

	v, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
