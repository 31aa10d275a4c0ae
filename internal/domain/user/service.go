package user

import "context"

// SessionManager owns the device session: the backend bearer token and the
// cached profile, both persisted so a restart does not log the user out.
type SessionManager interface {
	// Login authenticates against the backend and persists token + profile.
	Login(ctx context.Context, email, password string) (User, error)

	// Logout drops the persisted session.
	Logout(ctx context.Context) error

	// Current returns the cached profile. ErrNoSession without a login,
	// ErrSessionExpired when the stored token has lapsed.
	Current(ctx context.Context) (User, error)

	// Restore reloads a persisted session at startup. A missing or expired
	// session is not an error; the device simply starts logged out.
	Restore(ctx context.Context) error
}
