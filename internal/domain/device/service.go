package device

import "context"

// Unlocker is the device unlock gate: a hashed PIN standing in for the
// platform biometric check on hardware without an enrolled sensor.
type Unlocker interface {
	// Enroll hashes and stores a new PIN, replacing any existing one.
	Enroll(ctx context.Context, pin string) error

	// Verify checks a PIN attempt. ErrPINMismatch on a wrong PIN,
	// ErrPINNotEnrolled when no PIN has been set.
	Verify(ctx context.Context, pin string) error

	// Enrolled reports whether a PIN is set.
	Enrolled(ctx context.Context) bool
}
