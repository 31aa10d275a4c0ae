package assignment

import "context"

// Resolver resolves the current employee's workplace assignment with a
// short-lived cache in front of the backend.
type Resolver interface {
	// Mine returns the cached assignment when it is younger than the TTL and
	// forceRefresh is false. Otherwise it hits the backend; on backend
	// failure it serves the last-known-good value (even stale) and returns
	// an error only if there has never been a successful fetch.
	Mine(ctx context.Context, forceRefresh bool) (*EmployeeAssignment, error)

	// ByEmployee resolves another employee's assignment. Never cached.
	ByEmployee(ctx context.Context, employeeID string) (*EmployeeAssignment, error)

	// HasAssignment reports whether Mine resolves to a non-nil assignment.
	HasAssignment(ctx context.Context) bool

	// ClearCache drops the cached value, forcing the next Mine to hit the
	// backend.
	ClearCache()
}
