package http

import (
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Countdown(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	tracker  attendance.Service
	sessions user.SessionManager
}

func NewAttendanceHandler(tracker attendance.Service, sessions user.SessionManager) AttendanceHandler {
	return &attendanceHandlerImpl{
		tracker:  tracker,
		sessions: sessions,
	}
}

func (h *attendanceHandlerImpl) employeeID(r *http.Request) (string, error) {
	current, err := h.sessions.Current(r.Context())
	if err != nil {
		return "", err
	}
	return current.EmployeeID, nil
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, h.tracker.Today(employeeID))
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.tracker.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", resp)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.tracker.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked out", resp)
}

// Countdown implements AttendanceHandler.
func (h *attendanceHandlerImpl) Countdown(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.CountdownResponse{
		RemainingMillis: h.tracker.Countdown(employeeID),
	})
}
