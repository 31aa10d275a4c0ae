package device

import "errors"

var (
	ErrPINNotEnrolled = errors.New("no unlock PIN enrolled on this device")
	ErrPINMismatch    = errors.New("unlock PIN does not match")
	ErrInvalidPIN     = errors.New("unlock PIN must be 4 to 8 digits")
)
