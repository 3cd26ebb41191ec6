// file: internals/features/attendance/window/window.go
package window

import (
	"time"

	dbtime "kampusku_backend/internals/helpers/dbtime"
)

/* =========================
   Defaults & constants
========================= */

const (
	DefaultWindowMinutes   = 15
	DefaultDurationMinutes = 60

	// Late threshold is a fixed mark after session start, independent of the
	// configured window length. A 5-minute window can never produce a late
	// check-in; a 30-minute window is on-time for 10 minutes, late for 20.
	LateThresholdMinutes = 10
)

/* =========================
   Closed reasons
========================= */

type Reason string

const (
	ReasonSessionInactive Reason = "session_inactive"
	ReasonSessionExpired  Reason = "session_expired"
	ReasonWindowElapsed   Reason = "window_elapsed"
)

/* =========================================
   Descriptor — immutable session snapshot
========================================= */

// Descriptor is everything Evaluate needs about a session. It is a value,
// built from storage by the caller; Evaluate never touches the DB or the
// wall clock.
type Descriptor struct {
	Date            time.Time  // date part only; clock fields ignored
	StartTime       dbtime.Tod // scheduled start, time-of-day
	IsActive        bool
	WindowMinutes   int
	DurationMinutes int
}

// StartAt combines Date + StartTime into an absolute instant, anchored in UTC.
// Both the live-display path and the check-in gate go through this one
// combination so the two can never disagree on the start instant.
func (d Descriptor) StartAt() time.Time {
	return time.Date(
		d.Date.Year(), d.Date.Month(), d.Date.Day(),
		d.StartTime.Hour(), d.StartTime.Minute(), d.StartTime.Second(),
		0, time.UTC,
	)
}

func (d Descriptor) WindowEnd() time.Time {
	return d.StartAt().Add(time.Duration(d.WindowMinutes) * time.Minute)
}

func (d Descriptor) SessionEnd() time.Time {
	return d.StartAt().Add(time.Duration(d.DurationMinutes) * time.Minute)
}

/* =========================================
   Snapshot — pure output of Evaluate
========================================= */

type Snapshot struct {
	IsOpen                  bool   `json:"is_open"`
	IsLate                  bool   `json:"is_late"`
	RemainingWindowSeconds  int    `json:"remaining_window_seconds"`
	RemainingSessionSeconds int    `json:"remaining_session_seconds"`
	ClosedReason            Reason `json:"closed_reason,omitempty"`
}

/* =========================================
   Evaluate
========================================= */

// Evaluate maps (descriptor, now) to a window snapshot. Deterministic and
// side-effect-free; safe to call concurrently.
//
// Closing triggers, first match wins:
//  1. is_active == false         → session_inactive
//  2. now after session end      → session_expired
//  3. now after window end       → window_elapsed
//
// The boundary instant itself is still open: now == windowEnd evaluates open
// with remaining_window_seconds == 0.
//
// Inconsistent configs (window longer than duration, zero durations) are not
// rejected; the precedence above still yields a well-defined snapshot.
func Evaluate(d Descriptor, now time.Time) Snapshot {
	start := d.StartAt()
	windowEnd := d.WindowEnd()
	sessionEnd := d.SessionEnd()

	snap := Snapshot{
		RemainingWindowSeconds:  remainingSeconds(windowEnd, now),
		RemainingSessionSeconds: remainingSeconds(sessionEnd, now),
	}

	switch {
	case !d.IsActive:
		snap.ClosedReason = ReasonSessionInactive
	case now.After(sessionEnd):
		snap.ClosedReason = ReasonSessionExpired
	case now.After(windowEnd):
		snap.ClosedReason = ReasonWindowElapsed
	default:
		snap.IsOpen = true
		snap.IsLate = now.After(start.Add(LateThresholdMinutes * time.Minute))
	}
	return snap
}

// remainingSeconds floors (end - now) to whole seconds and clamps at zero.
func remainingSeconds(end, now time.Time) int {
	if !end.After(now) {
		return 0
	}
	return int(end.Sub(now) / time.Second)
}
