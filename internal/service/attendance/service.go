package attendance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

// Tracker is the attendance session tracker. It keeps the full per-day,
// per-employee record mapping in memory, writes it back to the local store
// after every mutation, and reports clock events to the backend best-effort.
// The local record is what drives the device UI; a failed backend submission
// is logged, not rolled back.
type Tracker struct {
	store     attendance.RecordStore
	submitter attendance.Submitter
	checker   geofence.Checker
	policy    attendance.Policy
	now       func() time.Time

	mu      sync.Mutex
	records attendance.Records
}

func NewTracker(ctx context.Context, store attendance.RecordStore, submitter attendance.Submitter, checker geofence.Checker, policy attendance.Policy) (*Tracker, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		store:     store,
		submitter: submitter,
		checker:   checker,
		policy:    policy,
		now:       time.Now,
		records:   records,
	}, nil
}

// ClockIn implements attendance.Service.
func (t *Tracker) ClockIn(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	now := t.now()
	date := now.Format(dateFormat)

	check := t.checker.CheckMine(ctx)
	resp := attendance.ClockResponse{Date: date, Geofence: check}

	if err := gateError(check); err != nil {
		return resp, err
	}
	if err := t.policy.CheckClockIn(now); err != nil {
		return resp, err
	}

	t.mu.Lock()
	existing, _ := t.records.Get(date, employeeID)
	if existing.ClockInTime != nil {
		t.mu.Unlock()
		resp.Record = existing
		resp.Status = existing.Status()
		return resp, attendance.ErrAlreadyClockedIn
	}

	clockInStr := now.Format(timeFormat)
	clockInAt := now
	rec := attendance.Record{ClockInTime: &clockInStr, ClockInAt: &clockInAt}
	t.records.Put(date, employeeID, rec)
	t.persistLocked(ctx)
	t.mu.Unlock()

	t.submit(ctx, employeeID, check, now, t.submitter.SubmitClockIn, "clock-in")

	resp.Record = rec
	resp.Status = rec.Status()
	return resp, nil
}

// ClockOut implements attendance.Service.
func (t *Tracker) ClockOut(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	now := t.now()
	date := now.Format(dateFormat)

	check := t.checker.CheckMine(ctx)
	resp := attendance.ClockResponse{Date: date, Geofence: check}

	if err := gateError(check); err != nil {
		return resp, err
	}

	t.mu.Lock()
	rec, _ := t.records.Get(date, employeeID)
	if err := t.policy.CheckClockOut(now, rec); err != nil {
		t.mu.Unlock()
		resp.Record = rec
		resp.Status = rec.Status()
		return resp, err
	}

	clockOutStr := now.Format(timeFormat)
	rec.ClockOutTime = &clockOutStr
	t.records.Put(date, employeeID, rec)
	t.persistLocked(ctx)
	t.mu.Unlock()

	t.submit(ctx, employeeID, check, now, t.submitter.SubmitClockOut, "clock-out")

	resp.Record = rec
	resp.Status = rec.Status()
	return resp, nil
}

// Today implements attendance.Service.
func (t *Tracker) Today(employeeID string) attendance.TodayResponse {
	now := t.now()
	date := now.Format(dateFormat)

	t.mu.Lock()
	rec, _ := t.records.Get(date, employeeID)
	t.mu.Unlock()

	return attendance.TodayResponse{
		Date:         date,
		Status:       rec.Status(),
		Record:       rec,
		Availability: t.policy.ClockInAvailability(now),
	}
}

// TodayStatus implements attendance.Service.
func (t *Tracker) TodayStatus(employeeID string) attendance.Status {
	return t.Today(employeeID).Status
}

// Availability implements attendance.Service.
func (t *Tracker) Availability() attendance.ClockInAvailability {
	return t.policy.ClockInAvailability(t.now())
}

// Countdown implements attendance.Service.
func (t *Tracker) Countdown(employeeID string) int64 {
	now := t.now()
	if t.TodayStatus(employeeID) != attendance.StatusInProgress {
		return 0
	}
	return t.policy.CountdownMillis(now)
}

// persistLocked writes the whole mapping back. Durability is best-effort:
// the in-memory record stands either way and the next mutation retries the
// write.
func (t *Tracker) persistLocked(ctx context.Context) {
	if err := t.store.Save(ctx, t.records); err != nil {
		slog.Warn("Failed to persist attendance records", "error", err)
	}
}

func (t *Tracker) submit(ctx context.Context, employeeID string, check geofence.CheckResult, at time.Time, fn func(context.Context, attendance.Submission) error, action string) {
	sub := attendance.Submission{EmployeeID: employeeID, At: at}
	if check.Position != nil {
		sub.Latitude = check.Position.Latitude
		sub.Longitude = check.Position.Longitude
	}
	if err := fn(ctx, sub); err != nil {
		slog.Warn("Failed to report attendance to backend", "action", action, "employee_id", employeeID, "error", err)
	}
}

// gateError translates a failed geofence check into the domain error that
// blocks the clock action.
func gateError(check geofence.CheckResult) error {
	switch check.Err {
	case "":
	case geofence.ErrMsgNoAssignment:
		return assignment.ErrNoAssignment
	default:
		return attendance.ErrLocationUnavailable
	}
	if !check.WithinRadius {
		return attendance.ErrOutsideRadius
	}
	return nil
}
