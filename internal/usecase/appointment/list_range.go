package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
)

type RangeResult struct {
	View         domain.View              `json:"view"`
	From         time.Time                `json:"from"`
	To           time.Time                `json:"to"`
	Previous     string                   `json:"previous"`
	Next         string                   `json:"next"`
	Appointments []dto.AppointmentListDTO `json:"appointments"`
}

type ListAppointmentsInRange struct {
	repo domain.Repository
}

func NewListAppointmentsInRange(
	repo domain.Repository,
) *ListAppointmentsInRange {
	return &ListAppointmentsInRange{
		repo: repo,
	}
}

// Execute lists the owner's appointments overlapping the period's window,
// both computed and rendered in loc.
func (uc *ListAppointmentsInRange) Execute(
	ctx context.Context,
	ownerID uint,
	period domain.Period,
	loc *time.Location,
) (*RangeResult, error) {

	from, to := period.Window(loc)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		ownerID,
		from,
		to,
	)
	if err != nil {
		return nil, err
	}

	return &RangeResult{
		View:         period.View,
		From:         from,
		To:           to,
		Previous:     period.Previous().Anchor.In(loc).Format(domain.DateLayout),
		Next:         period.Next().Anchor.In(loc).Format(domain.DateLayout),
		Appointments: dto.NewAppointmentList(appointments, loc),
	}, nil
}
