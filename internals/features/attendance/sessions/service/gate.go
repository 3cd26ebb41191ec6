// file: internals/features/attendance/sessions/service/gate.go
package service

import (
	"time"

	"kampusku_backend/internals/features/attendance/window"
)

/* ==========================================================
   Check-in gate — the single authoritative decision point
========================================================== */

// Student-facing reject messages. This is the only place a closed reason is
// translated into user text; controllers and the live feed must not invent
// their own wording.
const (
	MsgSessionInactive = "Session has ended."
	MsgSessionExpired  = "Session has expired."
	MsgWindowElapsed   = "Attendance window has closed. Please contact your professor for manual attendance."
)

// Decision is the outcome of a check-in authorization.
type Decision struct {
	Allowed  bool
	IsLate   bool
	Reason   window.Reason
	Message  string
	Snapshot window.Snapshot
}

// Authorize evaluates the window with the server clock reading supplied by the
// caller and either allows the check-in (tagged on-time/late) or rejects it
// with a caller-facing message. It performs no I/O and no retries; the caller
// runs it inside the same transaction that persists the check-in row.
func Authorize(d window.Descriptor, now time.Time) Decision {
	snap := window.Evaluate(d, now)
	if snap.IsOpen {
		return Decision{
			Allowed:  true,
			IsLate:   snap.IsLate,
			Snapshot: snap,
		}
	}
	return Decision{
		Reason:   snap.ClosedReason,
		Message:  RejectMessage(snap.ClosedReason),
		Snapshot: snap,
	}
}

// RejectMessage maps a closed reason to its fixed student-facing text.
func RejectMessage(r window.Reason) string {
	switch r {
	case window.ReasonSessionInactive:
		return MsgSessionInactive
	case window.ReasonSessionExpired:
		return MsgSessionExpired
	case window.ReasonWindowElapsed:
		return MsgWindowElapsed
	default:
		return MsgSessionInactive
	}
}
