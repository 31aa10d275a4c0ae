package geofence

import "context"

// Checker evaluates whether the device currently sits inside the assigned
// workplace radius. Implementations must not return errors: every failure
// mode becomes a CheckResult with Err set and WithinRadius false.
type Checker interface {
	// CheckMine evaluates against the logged-in employee's assignment.
	CheckMine(ctx context.Context) CheckResult

	// CheckEmployee evaluates against a specific employee's assignment.
	CheckEmployee(ctx context.Context, employeeID string) CheckResult
}
