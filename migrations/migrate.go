// Package migrations embeds the SQL schema of the note store and applies it
// with goose. Each dialect has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialect names, matching the storage driver configuration.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]goose.Dialect{
	DialectSQLite:   goose.DialectSQLite3,
	DialectPostgres: goose.DialectPostgres,
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(gooseDialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
