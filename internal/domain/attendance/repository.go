package attendance

import (
	"context"
	"time"
)

// RecordStore persists the full attendance mapping on the device.
type RecordStore interface {
	// Load reads the whole mapping; a store with no saved state returns an
	// empty (non-nil) mapping.
	Load(ctx context.Context) (Records, error)

	// Save writes the whole mapping back.
	Save(ctx context.Context, records Records) error
}

// Submission is one clock event reported to the backend.
type Submission struct {
	EmployeeID string
	Latitude   float64
	Longitude  float64
	At         time.Time
}

// Submitter reports clock events to the backend attendance API. Submission
// failures do not undo the local record; the caller decides how to surface
// them.
type Submitter interface {
	SubmitClockIn(ctx context.Context, sub Submission) error
	SubmitClockOut(ctx context.Context, sub Submission) error
}
