package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVerificationNotFound is returned when no record exists for the
	// requested id.
	ErrVerificationNotFound = errors.New("verification was not found")

	// ErrObjectNotFound is returned when no object exists under a key.
	ErrObjectNotFound = errors.New("object was not found")

	// ErrObjectExists is returned when a freshly generated key is already
	// taken. Objects are never overwritten.
	ErrObjectExists = errors.New("object already exists")

	// ErrInvalidObjectKey is returned for keys that would escape the
	// storage root.
	ErrInvalidObjectKey = errors.New("invalid object key")

	// ErrUnsupportedDriver is returned for database drivers other than
	// "pgx" and "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan verification row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan verification rows")

	// ErrEncodingExplanation is returned when the narrative cannot be
	// converted to or from its JSON column.
	ErrEncodingExplanation = errors.New("failed to encode explanation")
)
