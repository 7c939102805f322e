package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
)

func TestSchedule_Resolve(t *testing.T) {
	s := Schedule{
		StartDate: "2024-03-12",
		StartTime: "9:00 AM",
		EndDate:   "2024-03-12",
		EndTime:   "10:30 am",
	}

	got, err := s.Resolve(time.UTC)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !got.Start.Equal(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", got.Start)
	}
	if !got.End.Equal(time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", got.End)
	}
}

func TestSchedule_ResolveErrors(t *testing.T) {
	base := Schedule{
		StartDate: "2024-03-12",
		StartTime: "9:00 AM",
		EndDate:   "2024-03-12",
		EndTime:   "10:00 AM",
	}

	cases := []struct {
		name   string
		mutate func(*Schedule)
		code   string
	}{
		{"bad date", func(s *Schedule) { s.StartDate = "12/03/2024" }, CodeInvalidDate},
		{"start after end date", func(s *Schedule) { s.StartDate = "2024-03-13" }, CodeStartDateAfterEndDate},
		{"24h clock", func(s *Schedule) { s.StartTime = "14:00" }, CodeInvalidTimeFormat},
		{"missing meridiem", func(s *Schedule) { s.EndTime = "10:00" }, CodeInvalidTimeFormat},
		{"hour out of range", func(s *Schedule) { s.EndTime = "13:00 PM" }, CodeInvalidTimeFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			tc.mutate(&s)
			_, err := s.Resolve(time.UTC)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestFields_Complete(t *testing.T) {
	f := Fields{
		Title:       " Intro ",
		Description: "first call",
		Location:    "Phoenix",
		Contact:     "alice",
		Type:        "Scrum",
		URL:         "https://example.com",
	}.Trimmed()

	if f.Title != "Intro" {
		t.Fatalf("Trimmed() kept spaces: %q", f.Title)
	}
	if !f.Complete() {
		t.Fatalf("expected complete")
	}

	f.Contact = ""
	if f.Complete() {
		t.Fatalf("expected incomplete without contact")
	}
}
