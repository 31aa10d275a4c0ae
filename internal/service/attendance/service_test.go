package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/location"
	"github.com/atlasfield/fieldops-agent-go/internal/repository/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	result geofence.CheckResult
}

func (f *fakeChecker) CheckMine(ctx context.Context) geofence.CheckResult {
	return f.result
}

func (f *fakeChecker) CheckEmployee(ctx context.Context, employeeID string) geofence.CheckResult {
	return f.result
}

type fakeSubmitter struct {
	clockIns  int
	clockOuts int
}

func (f *fakeSubmitter) SubmitClockIn(ctx context.Context, sub attendance.Submission) error {
	f.clockIns++
	return nil
}

func (f *fakeSubmitter) SubmitClockOut(ctx context.Context, sub attendance.Submission) error {
	f.clockOuts++
	return nil
}

func insideDepot() geofence.CheckResult {
	loc := workplace.WorkplaceLocation{
		ID:           "wpl-main-depot",
		Name:         "Main Depot",
		Latitude:     14.2753,
		Longitude:    121.1298,
		RadiusMeters: 100,
		IsActive:     true,
	}
	return geofence.CheckResult{
		WithinRadius:     true,
		DistanceMeters:   12,
		AssignedLocation: &loc,
		Position:         &location.Position{Latitude: 14.2753, Longitude: 121.1298},
	}
}

func newTestTracker(t *testing.T, check geofence.CheckResult) (*Tracker, *fakeSubmitter, attendance.RecordStore) {
	t.Helper()
	store := localstore.NewAttendanceStore(kvstore.NewMemStore())
	submitter := &fakeSubmitter{}
	tracker, err := NewTracker(context.Background(), store, submitter, &fakeChecker{result: check}, attendance.DefaultPolicy())
	require.NoError(t, err)
	return tracker, submitter, store
}

func setClock(tracker *Tracker, hour, min int) {
	tracker.now = func() time.Time {
		return time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
	}
}

func TestClockInHappyPath(t *testing.T) {
	ctx := context.Background()
	tracker, submitter, _ := newTestTracker(t, insideDepot())
	setClock(tracker, 14, 25)

	resp, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusInProgress, resp.Status)
	require.NotNil(t, resp.Record.ClockInTime)
	assert.Equal(t, "14:25:00", *resp.Record.ClockInTime)
	assert.Equal(t, 1, submitter.clockIns)
}

func TestClockInTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	tracker, submitter, _ := newTestTracker(t, insideDepot())
	setClock(tracker, 14, 25)

	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	resp, err := tracker.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// Exactly one clock-in recorded, and nothing re-submitted.
	require.NotNil(t, resp.Record.ClockInTime)
	assert.Equal(t, "14:25:00", *resp.Record.ClockInTime)
	assert.Equal(t, 1, submitter.clockIns)
}

func TestClockInOutsideRadius(t *testing.T) {
	ctx := context.Background()
	check := insideDepot()
	check.WithinRadius = false
	check.DistanceMeters = 150
	tracker, _, _ := newTestTracker(t, check)
	setClock(tracker, 14, 25)

	_, err := tracker.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrOutsideRadius)
	assert.Equal(t, attendance.StatusNotStarted, tracker.TodayStatus("emp-1"))
}

func TestClockInNoAssignment(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, geofence.CheckResult{Err: geofence.ErrMsgNoAssignment})
	setClock(tracker, 14, 25)

	_, err := tracker.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, assignment.ErrNoAssignment)
}

func TestClockInOutsideWindow(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, insideDepot())

	setClock(tracker, 14, 10)
	_, err := tracker.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrClockInNotOpen)

	setClock(tracker, 15, 31)
	_, err = tracker.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrClockInExpired)
}

func TestClockOutFlow(t *testing.T) {
	ctx := context.Background()
	tracker, submitter, _ := newTestTracker(t, insideDepot())

	setClock(tracker, 14, 25)
	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	// Too early.
	setClock(tracker, 18, 29)
	_, err = tracker.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrClockOutNotOpen)

	// In the window.
	setClock(tracker, 18, 35)
	resp, err := tracker.ClockOut(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, resp.Status)
	require.NotNil(t, resp.Record.ClockOutTime)
	assert.Equal(t, "18:35:00", *resp.Record.ClockOutTime)
	assert.Equal(t, 1, submitter.clockOuts)

	// Second attempt is rejected.
	_, err = tracker.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockOutAfterAbsoluteCutoff(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, insideDepot())

	setClock(tracker, 14, 25)
	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	setClock(tracker, 18, 41)
	_, err = tracker.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrDayClosed)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, insideDepot())
	setClock(tracker, 18, 35)

	_, err := tracker.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestTodayStatusLifecycle(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, insideDepot())

	setClock(tracker, 14, 25)
	assert.Equal(t, attendance.StatusNotStarted, tracker.TodayStatus("emp-1"))

	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusInProgress, tracker.TodayStatus("emp-1"))

	setClock(tracker, 18, 35)
	_, err = tracker.ClockOut(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, tracker.TodayStatus("emp-1"))
}

func TestRecordsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	tracker, submitter, store := newTestTracker(t, insideDepot())
	setClock(tracker, 14, 25)

	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	// A new tracker over the same store sees the open session.
	restarted, err := NewTracker(ctx, store, submitter, &fakeChecker{result: insideDepot()}, attendance.DefaultPolicy())
	require.NoError(t, err)
	setClock(restarted, 14, 40)
	assert.Equal(t, attendance.StatusInProgress, restarted.TodayStatus("emp-1"))

	_, err = restarted.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestCountdown(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker(t, insideDepot())

	// Not clocked in: no countdown.
	setClock(tracker, 14, 25)
	assert.Equal(t, int64(0), tracker.Countdown("emp-1"))

	_, err := tracker.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	setClock(tracker, 18, 20)
	assert.Equal(t, int64(10*60*1000), tracker.Countdown("emp-1"))

	// Stops at zero exactly at 18:30.
	setClock(tracker, 18, 30)
	assert.Equal(t, int64(0), tracker.Countdown("emp-1"))
}
