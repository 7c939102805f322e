package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/cache"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
	"github.com/BruksfildServices01/appointment-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SaveAppointmentInput struct {
	// Zero creates a new appointment.
	AppointmentID uint

	OwnerID uint
	Actor   string

	CustomerID uint
	Fields     domain.Fields
	Schedule   domain.Schedule

	// IANA zone the dates and times were entered in. Empty means the
	// business time zone.
	Timezone string
}

// ======================================================
// USE CASE
// ======================================================

type SaveAppointment struct {
	repo  domain.Repository
	hours domain.BusinessHours
	audit *audit.Dispatcher
	cache *cache.ReportCache
}

func NewSaveAppointment(
	repo domain.Repository,
	hours domain.BusinessHours,
	audit *audit.Dispatcher,
	cache *cache.ReportCache,
) *SaveAppointment {
	return &SaveAppointment{
		repo:  repo,
		hours: hours,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveAppointment) Execute(
	ctx context.Context,
	in SaveAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	fields := in.Fields.Trimmed()
	if in.CustomerID == 0 || !fields.Complete() || !in.Schedule.Complete() {
		return nil, httperr.ErrBusiness(domain.CodeRequiredFields)
	}

	// --------------------------------------------------
	// 2. Dates / times in the caller's zone
	// --------------------------------------------------
	loc := uc.location(in.Timezone)

	iv, err := in.Schedule.Resolve(loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Interval + business hours
	// --------------------------------------------------
	if err := domain.Precheck(iv, uc.hours); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Overlap + persist, one transaction
	// --------------------------------------------------
	var saved *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetCustomer(ctx, in.CustomerID); err != nil {
			return err
		}

		ap := &models.Appointment{
			UserID:    in.OwnerID,
			CreatedBy: in.Actor,
		}
		if in.AppointmentID != 0 {
			existing, err := tx.GetAppointmentForOwner(ctx, in.AppointmentID, in.OwnerID)
			if err != nil {
				return err
			}
			ap = existing
		}

		overlapping, err := tx.ListOverlapping(ctx, in.OwnerID, iv.Start, iv.End)
		if err != nil {
			return err
		}

		candidate := domain.Candidate{
			ID:       in.AppointmentID,
			OwnerID:  in.OwnerID,
			Interval: iv,
		}
		if err := domain.Check(candidate, overlapping, uc.hours); err != nil {
			return err
		}

		ap.CustomerID = in.CustomerID
		ap.Title = fields.Title
		ap.Description = fields.Description
		ap.Location = fields.Location
		ap.Contact = fields.Contact
		ap.Type = fields.Type
		ap.URL = fields.URL
		ap.StartTime = iv.Start
		ap.EndTime = iv.End
		ap.LastUpdateBy = in.Actor

		if in.AppointmentID == 0 {
			err = tx.CreateAppointment(ctx, ap)
		} else {
			err = tx.UpdateAppointment(ctx, ap)
		}
		if err != nil {
			return err
		}

		saved = ap
		return nil
	})

	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.OwnerID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"start":       iv.Start.UTC(),
					"end":         iv.End.UTC(),
					"conflict_id": conflict.Appointment.ID,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Cache + audit
	// --------------------------------------------------
	uc.cache.InvalidateAll(ctx)

	action := "appointment_created"
	if in.AppointmentID != 0 {
		action = "appointment_updated"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &saved.ID,
	})

	saved.StartTime = saved.StartTime.In(loc)
	saved.EndTime = saved.EndTime.In(loc)
	return saved, nil
}

func (uc *SaveAppointment) location(tz string) *time.Location {
	if tz == "" && uc.hours.Location != nil {
		return uc.hours.Location
	}
	return timezone.Location(tz)
}
