// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"testing"
	"time"
)

func TestParseAcceptsShortAndLongForms(t *testing.T) {
	for _, in := range []string{"09:00", "09:00:00"} {
		tod, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := tod.String(); got != "09:00:00" {
			t.Fatalf("Parse(%q) = %s, want 09:00:00", in, got)
		}
	}
	if _, err := Parse("25:99"); err == nil {
		t.Fatal("Parse(25:99) should fail")
	}
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc := time.FixedZone("X", 7*3600)
	src := time.Date(2024, 3, 15, 9, 30, 45, 123, loc)
	tod := From(src)
	if got := tod.String(); got != "09:30:45" {
		t.Fatalf("From = %s, want 09:30:45", got)
	}
	if tod.Year() != 0 || tod.Location() != time.UTC {
		t.Fatalf("From kept date/zone: %v", tod.Time)
	}
}

func TestScanRoundTripsDriverValue(t *testing.T) {
	tod, _ := Parse("14:05:09")
	v, err := tod.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var back Tod
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if back.String() != "14:05:09" {
		t.Fatalf("round trip = %s, want 14:05:09", back.String())
	}
}

func TestScanNilResetsToZero(t *testing.T) {
	tod, _ := Parse("08:00")
	if err := tod.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !tod.Time.IsZero() {
		t.Fatalf("Scan(nil) left %v", tod.Time)
	}
}
