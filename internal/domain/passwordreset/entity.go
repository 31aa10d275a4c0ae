package passwordreset

import "time"

// Request is a pending or processed password-reset ticket, owned by the
// backend.
type Request struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
