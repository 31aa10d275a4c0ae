package assignment

import "context"

// Repository fetches assignments from the backend. FetchMine returns
// (nil, nil) when the backend affirmatively reports no active assignment.
type Repository interface {
	FetchMine(ctx context.Context) (*EmployeeAssignment, error)
	FetchByEmployee(ctx context.Context, employeeID string) (*EmployeeAssignment, error)
}
