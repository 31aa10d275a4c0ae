package location

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
)

// Position is a single high-accuracy device fix.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Provider yields the device's current position. The platform location stack
// sits behind this interface; the agent never talks to hardware directly.
type Provider interface {
	Current(ctx context.Context) (Position, error)
}

// Static always reports a fixed position. Used for stationary kiosk installs
// and in tests.
type Static struct {
	Position Position
}

func (s Static) Current(ctx context.Context) (Position, error) {
	p := s.Position
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	return p, nil
}

// Func adapts a plain function into a Provider.
type Func func(ctx context.Context) (Position, error)

func (f Func) Current(ctx context.Context) (Position, error) {
	return f(ctx)
}
