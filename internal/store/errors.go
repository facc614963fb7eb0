package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a new user cannot be created
	// because the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by id or username matches no
	// user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOwnerNotFound is returned when a recipe references a user that does
	// not exist.
	ErrOwnerNotFound = errors.New("recipe owner does not exist")

	// ErrConstraintViolation is returned when a CHECK or NOT NULL constraint
	// rejects a row that passed validation.
	ErrConstraintViolation = errors.New("data violates a database constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrConnectingDB is returned when the database cannot be opened or
	// pinged.
	ErrConnectingDB = errors.New("error connecting database")
)
