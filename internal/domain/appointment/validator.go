package appointment

import (
	"fmt"
	"sort"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

const (
	CodeInvalidInterval      = "invalid_interval"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeTimeConflict         = "time_conflict"
)

// Candidate is an appointment about to be saved. ID is zero for a new
// appointment and the stored id when editing.
type Candidate struct {
	ID      uint
	OwnerID uint
	Interval
}

// ConflictError reports the stored appointment a candidate collides with.
type ConflictError struct {
	Appointment models.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: overlaps appointment %d", CodeTimeConflict, e.Appointment.ID)
}

func (e *ConflictError) BusinessCode() string {
	return CodeTimeConflict
}

// Check runs the scheduling policy for a candidate against the owner's
// stored appointments. An invalid interval is rejected before the other
// checks. The appointment being edited never conflicts with itself.
// Appointments of other owners are ignored.
func Check(c Candidate, existing []models.Appointment, hours BusinessHours) error {
	if err := Precheck(c.Interval, hours); err != nil {
		return err
	}

	if conflict := FindConflict(c, existing); conflict != nil {
		return &ConflictError{Appointment: *conflict}
	}

	return nil
}

// Precheck runs the checks that need no stored data.
func Precheck(iv Interval, hours BusinessHours) error {
	if !iv.Valid() {
		return httperr.ErrBusiness(CodeInvalidInterval)
	}

	if !hours.Contains(iv) {
		return httperr.ErrBusiness(CodeOutsideBusinessHours)
	}

	return nil
}

// FindConflict returns the earliest-starting appointment overlapping the
// candidate, or nil.
func FindConflict(c Candidate, existing []models.Appointment) *models.Appointment {
	var conflicts []models.Appointment
	for _, ap := range existing {
		if ap.UserID != c.OwnerID {
			continue
		}
		if c.ID != 0 && ap.ID == c.ID {
			continue
		}
		if Overlaps(c.Interval, Interval{Start: ap.StartTime, End: ap.EndTime}) {
			conflicts = append(conflicts, ap)
		}
	}

	if len(conflicts) == 0 {
		return nil
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].StartTime.Equal(conflicts[j].StartTime) {
			return conflicts[i].ID < conflicts[j].ID
		}
		return conflicts[i].StartTime.Before(conflicts[j].StartTime)
	})
	return &conflicts[0]
}
