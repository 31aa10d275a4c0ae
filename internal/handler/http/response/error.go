package response

import (
	"errors"
	"net/http"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/device"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error (local or decoded from a backend 422)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrNoSession):
		Unauthorized(w, "Not logged in")
	case errors.Is(err, user.ErrSessionExpired):
		Unauthorized(w, "Session expired, please log in again")
	case errors.Is(err, api.ErrUnauthorized):
		Unauthorized(w, "Backend rejected the session token")

	// Device unlock errors
	case errors.Is(err, device.ErrPINNotEnrolled):
		NotFound(w, "No unlock PIN enrolled")
	case errors.Is(err, device.ErrPINMismatch):
		Unauthorized(w, "Unlock PIN does not match")
	case errors.Is(err, device.ErrInvalidPIN):
		BadRequest(w, err.Error(), nil)

	// Assignment / workplace errors
	case errors.Is(err, assignment.ErrNoAssignment):
		NotFound(w, "No location assigned")
	case errors.Is(err, workplace.ErrLocationNotFound):
		NotFound(w, "Workplace location not found")

	// Attendance preconditions: guarded, not fatal; the message drives the
	// inline UI text.
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrClockInNotOpen),
		errors.Is(err, attendance.ErrClockInExpired),
		errors.Is(err, attendance.ErrClockOutNotOpen),
		errors.Is(err, attendance.ErrDayClosed),
		errors.Is(err, attendance.ErrOutsideRadius),
		errors.Is(err, attendance.ErrLocationUnavailable):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
