package attendance

import "context"

// Service is the attendance session tracker: it gates clock events behind
// the geofence and the window policy, records them per employee per day, and
// reports them to the backend best-effort.
type Service interface {
	// ClockIn runs the full gate (geofence, window policy, no prior
	// clock-in today) and records the event.
	ClockIn(ctx context.Context, employeeID string) (ClockResponse, error)

	// ClockOut runs the clock-out gate (prior clock-in, no prior clock-out,
	// clock-out window) and records the event.
	ClockOut(ctx context.Context, employeeID string) (ClockResponse, error)

	// Today returns the record and derived status for the current date.
	Today(employeeID string) TodayResponse

	// TodayStatus is a convenience wrapper over Today.
	TodayStatus(employeeID string) Status

	// Availability evaluates the clock-in gate at the current instant.
	Availability() ClockInAvailability

	// Countdown is the remaining time until clock-out opens, in
	// milliseconds. Zero unless the employee is currently clocked in and
	// the work day has not ended.
	Countdown(employeeID string) int64
}
