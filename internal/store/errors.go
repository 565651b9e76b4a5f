package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id, username or email
	// matches no user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUsernameTaken is returned when an INSERT or UPDATE violates the
	// unique constraint on users.username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned by a profile update when another user already
	// uses the requested email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrEventNotFound is returned when no event has the requested id.
	ErrEventNotFound = errors.New("event was not found")

	// ErrEventClosed is returned when a registration targets an event whose
	// status no longer accepts volunteers.
	ErrEventClosed = errors.New("event is not accepting volunteers")

	// ErrEventFull is returned when the roster already holds
	// requiredVolunteers entries.
	ErrEventFull = errors.New("event is full")

	// ErrAlreadyRegistered is returned when the user is already on the
	// event roster.
	ErrAlreadyRegistered = errors.New("user already registered for event")

	// ErrNotRegistered is returned by a withdrawal when the user is not on
	// the event roster.
	ErrNotRegistered = errors.New("user is not registered for event")

	// ErrStatusChanged is returned when a conditional status update finds the
	// event in a different status than the caller observed.
	ErrStatusChanged = errors.New("event status changed concurrently")

	// ErrImageNotFound is returned when an image key has no stored object.
	ErrImageNotFound = errors.New("image was not found")

	// ErrImageStorageDisabled is returned by the no-op image storage used
	// when no object storage endpoint is configured.
	ErrImageStorageDisabled = errors.New("image storage is not configured")
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
