package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn = errors.New("you have already clocked in today")
	ErrClockInNotOpen   = errors.New("clock-in is not open yet")
	ErrClockInExpired   = errors.New("the clock-in window has expired")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrClockOutNotOpen   = errors.New("clock-out is not open yet")

	// Shared
	ErrDayClosed           = errors.New("the attendance day has ended")
	ErrOutsideRadius       = errors.New("you are outside the allowed workplace radius")
	ErrLocationUnavailable = errors.New("current location could not be determined")
)
