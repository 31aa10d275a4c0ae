package workplace

import "context"

// Directory holds the process-wide workplace list. The list is replaced
// wholesale on each successful refresh; there is no partial-update or merge.
type Directory interface {
	// Refresh re-fetches the list from the backend. On failure it keeps the
	// current list (the built-in defaults if no fetch ever succeeded) and
	// never fails the caller.
	Refresh(ctx context.Context) []WorkplaceLocation

	// All returns the last fetched (or default) list without a network call.
	All() []WorkplaceLocation

	// Active filters All by IsActive.
	Active() []WorkplaceLocation

	// Find looks a location up by ID in the current list.
	Find(id string) (WorkplaceLocation, error)
}
