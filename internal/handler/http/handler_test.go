package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/device"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/incident"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/inventory"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/passwordreset"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	current *user.User
	loginFn func(email, password string) (user.User, error)
}

func (f *fakeSessions) Login(ctx context.Context, email, password string) (user.User, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	profile := user.User{ID: "user-1", EmployeeID: "emp-1", Name: "Dan Reyes", Email: email}
	f.current = &profile
	return profile, nil
}

func (f *fakeSessions) Logout(ctx context.Context) error {
	f.current = nil
	return nil
}

func (f *fakeSessions) Current(ctx context.Context) (user.User, error) {
	if f.current == nil {
		return user.User{}, user.ErrNoSession
	}
	return *f.current, nil
}

func (f *fakeSessions) Restore(ctx context.Context) error { return nil }

type fakeUnlocker struct {
	pin string
}

func (f *fakeUnlocker) Enroll(ctx context.Context, pin string) error {
	if len(pin) < 4 {
		return device.ErrInvalidPIN
	}
	f.pin = pin
	return nil
}

func (f *fakeUnlocker) Verify(ctx context.Context, pin string) error {
	if f.pin == "" {
		return device.ErrPINNotEnrolled
	}
	if pin != f.pin {
		return device.ErrPINMismatch
	}
	return nil
}

func (f *fakeUnlocker) Enrolled(ctx context.Context) bool { return f.pin != "" }

type fakeDirectory struct {
	locations []workplace.WorkplaceLocation
}

func (f *fakeDirectory) Refresh(ctx context.Context) []workplace.WorkplaceLocation {
	return f.locations
}

func (f *fakeDirectory) All() []workplace.WorkplaceLocation { return f.locations }

func (f *fakeDirectory) Active() []workplace.WorkplaceLocation {
	var active []workplace.WorkplaceLocation
	for _, loc := range f.locations {
		if loc.IsActive {
			active = append(active, loc)
		}
	}
	return active
}

func (f *fakeDirectory) Find(id string) (workplace.WorkplaceLocation, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return workplace.WorkplaceLocation{}, workplace.ErrLocationNotFound
}

type fakeResolver struct {
	current *assignment.EmployeeAssignment
	err     error
}

func (f *fakeResolver) Mine(ctx context.Context, forceRefresh bool) (*assignment.EmployeeAssignment, error) {
	return f.current, f.err
}

func (f *fakeResolver) ByEmployee(ctx context.Context, employeeID string) (*assignment.EmployeeAssignment, error) {
	return f.current, f.err
}

func (f *fakeResolver) HasAssignment(ctx context.Context) bool { return f.current != nil }

func (f *fakeResolver) ClearCache() {}

type fakeChecker struct {
	result geofence.CheckResult
}

func (f *fakeChecker) CheckMine(ctx context.Context) geofence.CheckResult { return f.result }

func (f *fakeChecker) CheckEmployee(ctx context.Context, employeeID string) geofence.CheckResult {
	return f.result
}

type fakeTracker struct {
	clockInErr  error
	clockOutErr error
}

func (f *fakeTracker) ClockIn(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	if f.clockInErr != nil {
		return attendance.ClockResponse{}, f.clockInErr
	}
	return attendance.ClockResponse{Date: "2025-03-10", Status: attendance.StatusInProgress}, nil
}

func (f *fakeTracker) ClockOut(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	if f.clockOutErr != nil {
		return attendance.ClockResponse{}, f.clockOutErr
	}
	return attendance.ClockResponse{Date: "2025-03-10", Status: attendance.StatusCompleted}, nil
}

func (f *fakeTracker) Today(employeeID string) attendance.TodayResponse {
	return attendance.TodayResponse{Date: "2025-03-10", Status: attendance.StatusNotStarted}
}

func (f *fakeTracker) TodayStatus(employeeID string) attendance.Status {
	return attendance.StatusNotStarted
}

func (f *fakeTracker) Availability() attendance.ClockInAvailability {
	return attendance.ClockInAvailability{Available: true}
}

func (f *fakeTracker) Countdown(employeeID string) int64 { return 600000 }

type fakeReporter struct{}

func (f *fakeReporter) File(ctx context.Context, employeeID string, req incident.ReportRequest) (incident.Report, error) {
	if err := req.Validate(); err != nil {
		return incident.Report{}, err
	}
	return incident.Report{ID: "inc-1", EmployeeID: employeeID, Category: req.Category}, nil
}

type fakeRequests struct{}

func (f *fakeRequests) RequestItems(ctx context.Context, employeeID string, req inventory.ItemsRequest) (inventory.Request, error) {
	if err := req.Validate(); err != nil {
		return inventory.Request{}, err
	}
	return inventory.Request{ID: "req-1", EmployeeID: employeeID, Items: req.Items}, nil
}

func (f *fakeRequests) RequestReassignment(ctx context.Context, employeeID string, req inventory.ReassignRequest) (inventory.ReassignmentRequest, error) {
	if err := req.Validate(); err != nil {
		return inventory.ReassignmentRequest{}, err
	}
	return inventory.ReassignmentRequest{ID: "ras-1", EmployeeID: employeeID, LocationID: req.LocationID}, nil
}

type fakeResets struct {
	created []passwordreset.Request
}

func (f *fakeResets) Create(ctx context.Context, email string) (passwordreset.Request, error) {
	req := passwordreset.Request{ID: "pr-1", Email: email, Status: "pending"}
	f.created = append(f.created, req)
	return req, nil
}

func (f *fakeResets) List(ctx context.Context) ([]passwordreset.Request, error) {
	return f.created, nil
}

type testEnv struct {
	router   http.Handler
	sessions *fakeSessions
	tracker  *fakeTracker
	resolver *fakeResolver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sessions := &fakeSessions{}
	tracker := &fakeTracker{}
	resolver := &fakeResolver{}
	directory := &fakeDirectory{locations: []workplace.WorkplaceLocation{
		{ID: "wpl-1", Name: "Main Depot", IsActive: true},
		{ID: "wpl-2", Name: "Old Annex", IsActive: false},
	}}

	handlers := Handlers{
		Session:       NewSessionHandler(sessions),
		Device:        NewDeviceHandler(&fakeUnlocker{pin: "1234"}),
		Workplace:     NewWorkplaceHandler(directory),
		Assignment:    NewAssignmentHandler(resolver),
		Geofence:      NewGeofenceHandler(&fakeChecker{result: geofence.CheckResult{WithinRadius: true, DistanceMeters: 12}}),
		Attendance:    NewAttendanceHandler(tracker, sessions),
		Incident:      NewIncidentHandler(&fakeReporter{}, sessions),
		Inventory:     NewInventoryHandler(&fakeRequests{}, sessions),
		PasswordReset: NewPasswordResetHandler(&fakeResets{}),
	}

	return &testEnv{
		router:   NewRouter("test", "http://localhost:3000", handlers),
		sessions: sessions,
		tracker:  tracker,
		resolver: resolver,
	}
}

func (e *testEnv) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/v1/session/login",
		`{"email":"dan@fieldops.example","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/session/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env.login(t)

	rec = env.request(t, http.MethodGet, "/api/v1/session/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "emp-1", data["employee_id"])
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/session/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeEnvelope(t, rec)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestDeviceUnlock(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/device/unlock", `{"pin":"1234"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/device/unlock", `{"pin":"9999"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWorkplaceListFiltersActive(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/workplaces", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Len(t, body["data"].([]any), 2)

	rec = env.request(t, http.MethodGet, "/api/v1/workplaces?active=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Len(t, body["data"].([]any), 1)
}

func TestAssignmentNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/assignment", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeofenceCheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/geofence/check", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["is_within_radius"])
}

func TestAttendanceRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/attendance/clock-in", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAttendanceClockCycle(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	rec := env.request(t, http.MethodPost, "/api/v1/attendance/clock-in", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/attendance/clock-out", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/attendance/countdown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(600000), data["remaining_millis"])
}

func TestAttendancePolicyViolationMapsToConflict(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.tracker.clockInErr = attendance.ErrClockInNotOpen

	rec := env.request(t, http.MethodPost, "/api/v1/attendance/clock-in", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInventoryRequestValidation(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	rec := env.request(t, http.MethodPost, "/api/v1/inventory/requests", `{"items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/inventory/requests",
		`{"items":[{"name":"safety vest","quantity":2}],"notes":"size L"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/password-resets", `{"email":"dan@fieldops.example"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/password-resets", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
