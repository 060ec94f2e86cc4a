package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when a note id collides with a stored one.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrNoteNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrUnsupportedDriver is returned for an unknown database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan note rows")
)
