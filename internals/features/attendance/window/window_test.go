package window

import (
	"testing"
	"time"

	dbtime "kampusku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

// baseDescriptor: 2024-01-01 09:00:00 UTC, window 15m, duration 60m, active.
func baseDescriptor(t *testing.T) Descriptor {
	t.Helper()
	return Descriptor{
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTod(t, "09:00:00"),
		IsActive:        true,
		WindowMinutes:   15,
		DurationMinutes: 60,
	}
}

func at(h, m, s int) time.Time {
	return time.Date(2024, 1, 1, h, m, s, 0, time.UTC)
}

func TestEvaluateScenarios(t *testing.T) {
	d := baseDescriptor(t)

	tests := []struct {
		name       string
		desc       Descriptor
		now        time.Time
		wantOpen   bool
		wantLate   bool
		wantReason Reason
		wantWinSec int
		wantSesSec int
	}{
		{
			name: "exact start", desc: d, now: at(9, 0, 0),
			wantOpen: true, wantWinSec: 900, wantSesSec: 3600,
		},
		{
			name: "just under late threshold", desc: d, now: at(9, 9, 59),
			wantOpen: true, wantLate: false, wantWinSec: 301, wantSesSec: 3001,
		},
		{
			name: "just past late threshold", desc: d, now: at(9, 10, 1),
			wantOpen: true, wantLate: true, wantWinSec: 299, wantSesSec: 2999,
		},
		{
			name: "window boundary is inclusive", desc: d, now: at(9, 15, 0),
			wantOpen: true, wantLate: true, wantWinSec: 0, wantSesSec: 2700,
		},
		{
			name: "one second past window", desc: d, now: at(9, 15, 1),
			wantReason: ReasonWindowElapsed, wantSesSec: 2699,
		},
		{
			name: "past session end while still active", desc: d, now: at(10, 0, 1),
			wantReason: ReasonSessionExpired,
		},
		{
			name: "inactive overrides an otherwise open window",
			desc: func() Descriptor { dd := d; dd.IsActive = false; return dd }(),
			now:  at(9, 5, 0),
			wantReason: ReasonSessionInactive, wantWinSec: 600, wantSesSec: 3300,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.desc, tc.now)
			if got.IsOpen != tc.wantOpen {
				t.Errorf("IsOpen = %v, want %v", got.IsOpen, tc.wantOpen)
			}
			if got.IsLate != tc.wantLate {
				t.Errorf("IsLate = %v, want %v", got.IsLate, tc.wantLate)
			}
			if got.ClosedReason != tc.wantReason {
				t.Errorf("ClosedReason = %q, want %q", got.ClosedReason, tc.wantReason)
			}
			if got.RemainingWindowSeconds != tc.wantWinSec {
				t.Errorf("RemainingWindowSeconds = %d, want %d", got.RemainingWindowSeconds, tc.wantWinSec)
			}
			if got.RemainingSessionSeconds != tc.wantSesSec {
				t.Errorf("RemainingSessionSeconds = %d, want %d", got.RemainingSessionSeconds, tc.wantSesSec)
			}
		})
	}
}

func TestInactiveWinsRegardlessOfNow(t *testing.T) {
	d := baseDescriptor(t)
	d.IsActive = false

	nows := []time.Time{
		at(8, 0, 0),  // before start
		at(9, 0, 0),  // at start
		at(9, 20, 0), // window elapsed
		at(11, 0, 0), // session expired
	}
	for _, now := range nows {
		got := Evaluate(d, now)
		if got.IsOpen {
			t.Errorf("now=%v: inactive session reported open", now)
		}
		if got.ClosedReason != ReasonSessionInactive {
			t.Errorf("now=%v: reason = %q, want %q", now, got.ClosedReason, ReasonSessionInactive)
		}
	}
}

func TestExpiredTakesPrecedenceOverWindowElapsed(t *testing.T) {
	// Degenerate config: window longer than the session. Once the session
	// duration has elapsed the reason must be session_expired, not
	// window_elapsed, even though the window would nominally still be open.
	d := baseDescriptor(t)
	d.WindowMinutes = 90
	d.DurationMinutes = 60

	got := Evaluate(d, at(10, 0, 1))
	if got.ClosedReason != ReasonSessionExpired {
		t.Fatalf("reason = %q, want %q", got.ClosedReason, ReasonSessionExpired)
	}
	// The window still reports its own remaining time.
	if got.RemainingWindowSeconds == 0 {
		t.Fatal("expected remaining window seconds > 0 in degenerate config")
	}
}

func TestLateThresholdIndependentOfWindow(t *testing.T) {
	// Window shorter than the threshold: late can never happen while open.
	short := baseDescriptor(t)
	short.WindowMinutes = 5
	for sec := 0; sec <= 5*60; sec += 30 {
		now := at(9, 0, 0).Add(time.Duration(sec) * time.Second)
		got := Evaluate(short, now)
		if got.IsOpen && got.IsLate {
			t.Fatalf("5-minute window produced a late check-in at +%ds", sec)
		}
	}

	// Window longer than the threshold: exactly +10:00 is still on time,
	// +10:01 is late.
	long := baseDescriptor(t)
	long.WindowMinutes = 30
	if got := Evaluate(long, at(9, 10, 0)); !got.IsOpen || got.IsLate {
		t.Fatalf("+10:00 should be open and on time, got %+v", got)
	}
	if got := Evaluate(long, at(9, 10, 1)); !got.IsOpen || !got.IsLate {
		t.Fatalf("+10:01 should be open and late, got %+v", got)
	}
}

func TestZeroWindow(t *testing.T) {
	d := baseDescriptor(t)
	d.WindowMinutes = 0

	// Same-instant check-in is the inclusive boundary: still open.
	if got := Evaluate(d, at(9, 0, 0)); !got.IsOpen || got.RemainingWindowSeconds != 0 {
		t.Fatalf("same-instant with zero window should be open, got %+v", got)
	}
	// Any elapsed time closes it.
	if got := Evaluate(d, at(9, 0, 1)); got.IsOpen || got.ClosedReason != ReasonWindowElapsed {
		t.Fatalf("one second past start with zero window should be window_elapsed, got %+v", got)
	}
}

func TestRemainingSecondsMonotonic(t *testing.T) {
	d := baseDescriptor(t)
	prevWin, prevSes := -1, -1
	for sec := 0; sec <= 70*60; sec += 7 {
		now := at(9, 0, 0).Add(time.Duration(sec) * time.Second)
		got := Evaluate(d, now)
		if got.RemainingWindowSeconds < 0 || got.RemainingSessionSeconds < 0 {
			t.Fatalf("negative remaining at +%ds: %+v", sec, got)
		}
		if prevWin >= 0 && got.RemainingWindowSeconds > prevWin {
			t.Fatalf("remaining window increased at +%ds: %d -> %d", sec, prevWin, got.RemainingWindowSeconds)
		}
		if prevSes >= 0 && got.RemainingSessionSeconds > prevSes {
			t.Fatalf("remaining session increased at +%ds: %d -> %d", sec, prevSes, got.RemainingSessionSeconds)
		}
		prevWin, prevSes = got.RemainingWindowSeconds, got.RemainingSessionSeconds
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	d := baseDescriptor(t)
	now := at(9, 12, 34)
	if a, b := Evaluate(d, now), Evaluate(d, now); a != b {
		t.Fatalf("two evaluations with identical inputs differ: %+v vs %+v", a, b)
	}
}

func TestStartAtAnchorsUTC(t *testing.T) {
	d := baseDescriptor(t)
	// The date row may arrive in any location; only Y-M-D is read and the
	// combined instant is always UTC.
	d.Date = time.Date(2024, 1, 1, 23, 59, 0, 0, time.FixedZone("X", 7*3600))
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if got := d.StartAt(); !got.Equal(want) {
		t.Fatalf("StartAt = %v, want %v", got, want)
	}
}
