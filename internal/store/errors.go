package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match one row
	// produces an empty result set.
	ErrNotFound = errors.New("record not found")

	// ErrPersonNotFound is returned when a person lookup, update or delete
	// targets a uid that does not exist, and when a speech references an
	// unknown speaker.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonAlreadyExists is returned when the (name, first_name,
	// birth_date) identity is already taken.
	ErrPersonAlreadyExists = errors.New("person already exists")

	// ErrPersonInUse is returned when a person still speaks in a stored
	// speech and therefore cannot be deleted.
	ErrPersonInUse = errors.New("person is referenced by a speech")

	ErrSpeechNotFound = errors.New("speech not found")

	// ErrSpeechAlreadyExists is returned when the (name, date, media)
	// identity is already taken.
	ErrSpeechAlreadyExists = errors.New("speech already exists")

	// ErrTimeout is returned when a statement exceeds the configured
	// database timeout.
	ErrTimeout = errors.New("database timeout")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
