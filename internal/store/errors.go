package store

import "errors"

// Sentinel errors returned by lookup repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDriver is returned by [NewDB] when the configured driver
	// is neither postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrOrganizationNotInScope is returned when an organization is neither
	// one of the user's organizations nor one of their sub-organizations.
	ErrOrganizationNotInScope = errors.New("organization is not in user scope")

	// ErrOrganizationNotFound is returned when an organization queried for
	// its languages does not exist.
	ErrOrganizationNotFound = errors.New("organization was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
