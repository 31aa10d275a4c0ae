package attendance

import "time"

// Status of an employee's attendance for one calendar day.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Record is one employee's attendance for one calendar date. Created on the
// first successful clock-in of the day, mutated once more on clock-out,
// immutable thereafter.
//
// Invariant: ClockOutTime is never set without ClockInTime.
type Record struct {
	ClockInTime  *string    `json:"clock_in_time,omitempty"`
	ClockInAt    *time.Time `json:"clock_in_at,omitempty"`
	ClockOutTime *string    `json:"clock_out_time,omitempty"`
}

// Status derives the day status from which timestamps are present.
func (r Record) Status() Status {
	switch {
	case r.ClockInTime == nil:
		return StatusNotStarted
	case r.ClockOutTime == nil:
		return StatusInProgress
	default:
		return StatusCompleted
	}
}

// Records is the full persisted attendance state: ISO date ("2006-01-02")
// -> employee ID -> record. Loaded whole at startup and written back whole
// after every mutation.
type Records map[string]map[string]Record

// Get returns the record for an employee on a date, if any.
func (rs Records) Get(date, employeeID string) (Record, bool) {
	day, ok := rs[date]
	if !ok {
		return Record{}, false
	}
	rec, ok := day[employeeID]
	return rec, ok
}

// Put stores the record for an employee on a date.
func (rs Records) Put(date, employeeID string, rec Record) {
	day, ok := rs[date]
	if !ok {
		day = make(map[string]Record)
		rs[date] = day
	}
	day[employeeID] = rec
}
