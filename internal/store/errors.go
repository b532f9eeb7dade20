package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeAlreadyExists is returned when an insert is rejected by the
	// unique index on employee_id.
	ErrEmployeeAlreadyExists = errors.New("employee_id already exists")

	// ErrEmployeeNotFound is returned when no record matches the requested
	// employee_id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrCredentialNotFound is returned when a username is not part of the
	// configured credential set.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrUnknownDriver is returned by [NewStorages] for a driver name it
	// cannot construct.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a store-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan employee row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan employee rows")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into an employee.
	ErrDecodingDocument = errors.New("failed to decode employee document")

	// ErrCreatingIndexes is returned when the document store rejects the
	// index definitions at startup.
	ErrCreatingIndexes = errors.New("failed to create indexes")
)
