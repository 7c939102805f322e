package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 12, hour, min, 0, 0, time.UTC)
}

func iv(h1, m1, h2, m2 int) Interval {
	return Interval{Start: at(h1, m1), End: at(h2, m2)}
}

func stored(id, owner uint, i Interval) models.Appointment {
	return models.Appointment{ID: id, UserID: owner, StartTime: i.Start, EndTime: i.End}
}

func nineToSix(t *testing.T) BusinessHours {
	t.Helper()
	bh, err := NewBusinessHours("09:00", "18:00", time.UTC)
	if err != nil {
		t.Fatalf("business hours: %v", err)
	}
	return bh
}

func TestOverlaps_Symmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial", iv(10, 0, 11, 0), iv(10, 30, 11, 30), true},
		{"contained", iv(10, 0, 12, 0), iv(10, 30, 11, 0), true},
		{"identical", iv(10, 0, 11, 0), iv(10, 0, 11, 0), true},
		{"adjacent", iv(10, 0, 11, 0), iv(11, 0, 12, 0), false},
		{"disjoint", iv(9, 0, 10, 0), iv(13, 0, 14, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(a, b) = %v, want %v", got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Fatalf("Overlaps(b, a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheck_WorkedExample(t *testing.T) {
	hours := nineToSix(t)
	existing := []models.Appointment{stored(7, 1, iv(10, 0, 11, 0))}

	// overlapping slot reports the stored appointment
	err := Check(Candidate{OwnerID: 1, Interval: iv(10, 30, 11, 30)}, existing, hours)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Appointment.ID != 7 {
		t.Fatalf("expected conflict with 7, got %d", conflict.Appointment.ID)
	}
	if !httperr.IsBusiness(err, CodeTimeConflict) {
		t.Fatalf("expected code %s", CodeTimeConflict)
	}

	// before opening
	err = Check(Candidate{OwnerID: 1, Interval: iv(8, 0, 9, 0)}, existing, hours)
	if !httperr.IsBusiness(err, CodeOutsideBusinessHours) {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}

	// right after the stored one
	if err := Check(Candidate{OwnerID: 1, Interval: iv(11, 0, 12, 0)}, existing, hours); err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
}

func TestCheck_InvalidIntervalFirst(t *testing.T) {
	hours := nineToSix(t)
	existing := []models.Appointment{stored(1, 1, iv(10, 0, 11, 0))}

	for name, i := range map[string]Interval{
		"empty":    iv(10, 0, 10, 0),
		"reversed": iv(11, 0, 10, 0),
		// also outside hours, still reported as invalid
		"reversed_outside": iv(20, 0, 7, 0),
	} {
		err := Check(Candidate{OwnerID: 1, Interval: i}, existing, hours)
		if !httperr.IsBusiness(err, CodeInvalidInterval) {
			t.Fatalf("%s: expected invalid_interval, got %v", name, err)
		}
	}
}

func TestCheck_BusinessHoursEdges(t *testing.T) {
	hours := nineToSix(t)

	if err := Check(Candidate{OwnerID: 1, Interval: iv(9, 0, 18, 0)}, nil, hours); err != nil {
		t.Fatalf("full day should be accepted: %v", err)
	}
	if err := Check(Candidate{OwnerID: 1, Interval: iv(8, 59, 10, 0)}, nil, hours); !httperr.IsBusiness(err, CodeOutsideBusinessHours) {
		t.Fatalf("start before open: got %v", err)
	}
	if err := Check(Candidate{OwnerID: 1, Interval: iv(17, 0, 18, 1)}, nil, hours); !httperr.IsBusiness(err, CodeOutsideBusinessHours) {
		t.Fatalf("end after close: got %v", err)
	}
}

func TestBusinessHours_ComparedInLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	hours, err := NewBusinessHours("09:00", "18:00", ny)
	if err != nil {
		t.Fatal(err)
	}

	// 14:00-15:00 UTC is 10:00-11:00 in New York during EDT.
	summer := Interval{
		Start: time.Date(2024, time.July, 1, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.July, 1, 15, 0, 0, 0, time.UTC),
	}
	if !hours.Contains(summer) {
		t.Fatalf("expected inside hours in New York")
	}

	// 10:00 UTC is 06:00 in New York.
	early := Interval{
		Start: time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.July, 1, 11, 0, 0, 0, time.UTC),
	}
	if hours.Contains(early) {
		t.Fatalf("expected outside hours in New York")
	}
}

func TestCheck_EditExcludesSelf(t *testing.T) {
	hours := nineToSix(t)
	existing := []models.Appointment{stored(3, 1, iv(10, 0, 11, 0))}

	// moving 3 by half an hour only overlaps its old self
	if err := Check(Candidate{ID: 3, OwnerID: 1, Interval: iv(10, 30, 11, 30)}, existing, hours); err != nil {
		t.Fatalf("edit should not conflict with itself: %v", err)
	}

	// a new appointment in the same slot still conflicts
	if err := Check(Candidate{OwnerID: 1, Interval: iv(10, 30, 11, 30)}, existing, hours); err == nil {
		t.Fatalf("expected conflict for new appointment")
	}
}

func TestCheck_OtherOwnersIgnored(t *testing.T) {
	hours := nineToSix(t)
	existing := []models.Appointment{stored(1, 2, iv(10, 0, 11, 0))}

	if err := Check(Candidate{OwnerID: 1, Interval: iv(10, 0, 11, 0)}, existing, hours); err != nil {
		t.Fatalf("another user's appointment must not conflict: %v", err)
	}
}

func TestFindConflict_EarliestThenLowestID(t *testing.T) {
	existing := []models.Appointment{
		stored(9, 1, iv(11, 0, 12, 0)),
		stored(5, 1, iv(10, 0, 11, 0)),
		stored(4, 1, iv(10, 0, 10, 30)),
	}

	got := FindConflict(Candidate{OwnerID: 1, Interval: iv(9, 30, 12, 0)}, existing)
	if got == nil || got.ID != 4 {
		t.Fatalf("expected appointment 4, got %+v", got)
	}
}

func TestNewBusinessHours_RejectsEmptyWindow(t *testing.T) {
	if _, err := NewBusinessHours("18:00", "09:00", time.UTC); err == nil {
		t.Fatalf("expected error for close before open")
	}
	if _, err := NewBusinessHours("9am", "18:00", time.UTC); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestClock_Format(t *testing.T) {
	c, err := ParseClock("13:05")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "13:05" {
		t.Fatalf("String() = %q", c.String())
	}
	if c.Format() != "1:05 PM" {
		t.Fatalf("Format() = %q", c.Format())
	}
}
