package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMalformed = errors.New("malformed bearer token")

// Claims is the subset of the backend-issued bearer token the agent cares
// about. The agent never verifies the signature: the backend is the verifier,
// the agent only needs the identity and expiry for cache keys and re-login
// prompts.
type Claims struct {
	UserID     string
	EmployeeID string
	ExpiresAt  time.Time
}

// Parse extracts Claims from a backend-issued JWT without verifying it.
func Parse(tokenString string) (Claims, error) {
	tok, err := jwt.Parse([]byte(tokenString), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	claims := Claims{ExpiresAt: tok.Expiration()}

	if v, ok := tok.Get("user_id"); ok {
		if s, ok := v.(string); ok {
			claims.UserID = s
		}
	}
	if v, ok := tok.Get("employee_id"); ok {
		if s, ok := v.(string); ok {
			claims.EmployeeID = s
		}
	}

	return claims, nil
}

// Expired reports whether the token expiry has passed. Tokens without an exp
// claim never expire on the agent side.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}
