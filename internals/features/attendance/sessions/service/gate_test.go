package service

import (
	"testing"
	"time"

	"kampusku_backend/internals/features/attendance/window"
	dbtime "kampusku_backend/internals/helpers/dbtime"
)

func testDescriptor(t *testing.T) window.Descriptor {
	t.Helper()
	tod, err := dbtime.Parse("09:00:00")
	if err != nil {
		t.Fatalf("parse tod: %v", err)
	}
	return window.Descriptor{
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       tod,
		IsActive:        true,
		WindowMinutes:   15,
		DurationMinutes: 60,
	}
}

func TestAuthorizeAllowsOnTime(t *testing.T) {
	d := testDescriptor(t)
	dec := Authorize(d, time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC))
	if !dec.Allowed {
		t.Fatalf("expected allow, got reject: %+v", dec)
	}
	if dec.IsLate {
		t.Fatal("check-in at +5m should be on time")
	}
	if dec.Message != "" {
		t.Fatalf("allowed decision must not carry a reject message, got %q", dec.Message)
	}
}

func TestAuthorizeAllowsLate(t *testing.T) {
	d := testDescriptor(t)
	dec := Authorize(d, time.Date(2024, 1, 1, 9, 12, 0, 0, time.UTC))
	if !dec.Allowed || !dec.IsLate {
		t.Fatalf("check-in at +12m should be allowed and late, got %+v", dec)
	}
}

func TestAuthorizeRejectMessages(t *testing.T) {
	d := testDescriptor(t)
	inactive := d
	inactive.IsActive = false

	tests := []struct {
		name        string
		desc        window.Descriptor
		now         time.Time
		wantReason  window.Reason
		wantMessage string
	}{
		{
			name: "inactive session", desc: inactive,
			now:        time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC),
			wantReason: window.ReasonSessionInactive,
			// Fixed texts, matched verbatim by the UI.
			wantMessage: "Session has ended.",
		},
		{
			name: "expired session", desc: d,
			now:         time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC),
			wantReason:  window.ReasonSessionExpired,
			wantMessage: "Session has expired.",
		},
		{
			name: "window elapsed", desc: d,
			now:         time.Date(2024, 1, 1, 9, 15, 1, 0, time.UTC),
			wantReason:  window.ReasonWindowElapsed,
			wantMessage: "Attendance window has closed. Please contact your professor for manual attendance.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dec := Authorize(tc.desc, tc.now)
			if dec.Allowed {
				t.Fatalf("expected reject, got allow: %+v", dec)
			}
			if dec.Reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", dec.Reason, tc.wantReason)
			}
			if dec.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", dec.Message, tc.wantMessage)
			}
		})
	}
}

func TestAuthorizeBoundaryInclusive(t *testing.T) {
	d := testDescriptor(t)
	dec := Authorize(d, time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC))
	if !dec.Allowed {
		t.Fatalf("check-in at the exact window end must still be allowed, got %+v", dec)
	}
	if dec.Snapshot.RemainingWindowSeconds != 0 {
		t.Fatalf("remaining window at the boundary = %d, want 0", dec.Snapshot.RemainingWindowSeconds)
	}
}
