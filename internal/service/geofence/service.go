package geofence

import (
	"context"
	"errors"
	"math"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/assignment"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/geofence"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/geo"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/location"
)

// Evaluator decides radius membership for the current device position
// against the assigned workplace. It never returns an error: every failure
// mode is folded into the CheckResult.
type Evaluator struct {
	resolver assignment.Resolver
	locator  location.Provider
}

func NewEvaluator(resolver assignment.Resolver, locator location.Provider) *Evaluator {
	return &Evaluator{resolver: resolver, locator: locator}
}

// CheckMine implements geofence.Checker.
func (e *Evaluator) CheckMine(ctx context.Context) geofence.CheckResult {
	assigned, err := e.resolver.Mine(ctx, false)
	return e.evaluate(ctx, assigned, err)
}

// CheckEmployee implements geofence.Checker.
func (e *Evaluator) CheckEmployee(ctx context.Context, employeeID string) geofence.CheckResult {
	assigned, err := e.resolver.ByEmployee(ctx, employeeID)
	return e.evaluate(ctx, assigned, err)
}

func (e *Evaluator) evaluate(ctx context.Context, assigned *assignment.EmployeeAssignment, err error) geofence.CheckResult {
	if err != nil || assigned == nil {
		return geofence.CheckResult{Err: geofence.ErrMsgNoAssignment}
	}

	loc := assigned.Location

	pos, err := e.locator.Current(ctx)
	if err != nil {
		msg := geofence.ErrMsgLocationFailed
		if errors.Is(err, location.ErrPermissionDenied) {
			msg = geofence.ErrMsgPermissionDenied
		}
		return geofence.CheckResult{AssignedLocation: &loc, Err: msg}
	}

	// Rounded to whole meters for display; kept numeric.
	distance := math.Round(geo.Distance(pos.Latitude, pos.Longitude, loc.Latitude, loc.Longitude))

	return geofence.CheckResult{
		WithinRadius:     distance <= float64(loc.RadiusMeters),
		DistanceMeters:   distance,
		AssignedLocation: &loc,
		Position:         &pos,
	}
}
