package geofence

import (
	"github.com/atlasfield/fieldops-agent-go/internal/domain/workplace"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/location"
)

// CheckResult is the outcome of a single geofence evaluation. Ephemeral and
// recomputed on every check, never persisted.
//
// Invariant: WithinRadius is true iff AssignedLocation is non-nil and
// DistanceMeters <= AssignedLocation.RadiusMeters.
type CheckResult struct {
	WithinRadius     bool                         `json:"is_within_radius"`
	DistanceMeters   float64                      `json:"distance_meters"`
	AssignedLocation *workplace.WorkplaceLocation `json:"assigned_location,omitempty"`
	Position         *location.Position           `json:"position,omitempty"`
	Err              string                       `json:"error,omitempty"`
}

// Messages used in CheckResult.Err. The evaluator never propagates raw
// errors; every failure is folded into a populated result.
const (
	ErrMsgNoAssignment     = "No location assigned"
	ErrMsgPermissionDenied = "Location permission denied"
	ErrMsgLocationFailed   = "Failed to get current location"
)
