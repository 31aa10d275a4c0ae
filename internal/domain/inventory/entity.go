package inventory

import "time"

// RequestItem is one line of an inventory request.
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Request asks the back office for supplies or equipment.
type Request struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employee_id"`
	Items       []RequestItem `json:"items"`
	Notes       string        `json:"notes,omitempty"`
	RequestedAt time.Time     `json:"requested_at"`
}

// ReassignmentRequest asks to be moved to a different workplace location.
type ReassignmentRequest struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	LocationID  string    `json:"location_id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}
