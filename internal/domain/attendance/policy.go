package attendance

import "time"

// Policy holds the attendance time windows as minutes since midnight.
// The thresholds mirror the deployed shift exactly, including the
// twenty-minute gate after the announced window opens.
type Policy struct {
	// WindowOpen is the announced start of the clock-in window (14:00).
	WindowOpen int
	// GateOpen is the first minute a clock-in is actually accepted (14:20).
	GateOpen int
	// LateThreshold is the work start; clock-ins at or after it count as
	// late (14:30).
	LateThreshold int
	// ClockInCutoff is the hard end of the clock-in window (15:30).
	ClockInCutoff int
	// WorkEnd opens clock-out and hard-stops new clock-ins (18:30).
	WorkEnd int
	// AbsoluteEnd is the end of the attendance day; nothing is accepted at
	// or after it (18:40).
	AbsoluteEnd int
}

// DefaultPolicy returns the production shift windows.
func DefaultPolicy() Policy {
	return Policy{
		WindowOpen:    14 * 60,      // 14:00
		GateOpen:      14*60 + 20,   // 14:20
		LateThreshold: 14*60 + 30,   // 14:30
		ClockInCutoff: 15*60 + 30,   // 15:30
		WorkEnd:       18*60 + 30,   // 18:30
		AbsoluteEnd:   18*60 + 40,   // 18:40
	}
}

// ClockInAvailability is the gate decision for a clock-in attempt.
type ClockInAvailability struct {
	Available bool `json:"available"`
	Late      bool `json:"is_late"`
	Expired   bool `json:"is_expired"`
}

// MinuteOfDay converts a wall-clock instant to minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClockInAvailability evaluates the clock-in gate at the given instant.
func (p Policy) ClockInAvailability(now time.Time) ClockInAvailability {
	minute := MinuteOfDay(now)

	switch {
	case minute < p.WindowOpen:
		return ClockInAvailability{}
	case minute < p.GateOpen:
		// Announced window is open but the gate has not lifted yet.
		return ClockInAvailability{}
	case minute < p.ClockInCutoff:
		return ClockInAvailability{Available: true, Late: minute >= p.LateThreshold}
	default:
		return ClockInAvailability{Expired: true}
	}
}

// CheckClockIn returns the domain error blocking a clock-in at the given
// instant, or nil when one is permitted.
func (p Policy) CheckClockIn(now time.Time) error {
	minute := MinuteOfDay(now)
	if minute >= p.AbsoluteEnd {
		return ErrDayClosed
	}

	avail := p.ClockInAvailability(now)
	switch {
	case avail.Available:
		return nil
	case avail.Expired:
		return ErrClockInExpired
	default:
		return ErrClockInNotOpen
	}
}

// CheckClockOut returns the domain error blocking a clock-out at the given
// instant for a day with the given record state, or nil when permitted.
func (p Policy) CheckClockOut(now time.Time, rec Record) error {
	minute := MinuteOfDay(now)
	if minute >= p.AbsoluteEnd {
		return ErrDayClosed
	}
	if rec.ClockInTime == nil {
		return ErrNotClockedIn
	}
	if rec.ClockOutTime != nil {
		return ErrAlreadyClockedOut
	}
	if minute < p.WorkEnd {
		return ErrClockOutNotOpen
	}
	return nil
}

// CountdownMillis is the time remaining until WorkEnd on now's calendar day,
// in milliseconds. It reaches zero exactly at WorkEnd and stays there.
func (p Policy) CountdownMillis(now time.Time) int64 {
	target := time.Date(now.Year(), now.Month(), now.Day(),
		p.WorkEnd/60, p.WorkEnd%60, 0, 0, now.Location())
	return MillisUntil(target, now)
}

// MillisUntil is the non-negative span from now to target in milliseconds.
func MillisUntil(target, now time.Time) int64 {
	if !now.Before(target) {
		return 0
	}
	return target.Sub(now).Milliseconds()
}
