package incident

import (
	"io"
	"time"
)

// Categories accepted by the backend incident API.
var Categories = []string{"safety", "equipment", "security", "other"}

// Report is one field incident, stamped with the device position at the
// moment it is filed.
type Report struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Attachment is one photo or video attached to a report, streamed to the
// backend as a multipart part.
type Attachment struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}
