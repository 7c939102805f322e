package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
)

// UpcomingWindow is how far ahead a login looks for an appointment alert.
const UpcomingWindow = 15 * time.Minute

type FindUpcoming struct {
	repo domain.Repository
	now  func() time.Time
}

func NewFindUpcoming(repo domain.Repository) *FindUpcoming {
	return &FindUpcoming{repo: repo, now: time.Now}
}

// Execute returns the owner's next appointment starting within
// UpcomingWindow, or nil.
func (uc *FindUpcoming) Execute(
	ctx context.Context,
	ownerID uint,
	loc *time.Location,
) (*dto.AppointmentListDTO, error) {

	now := uc.now()
	ap, err := uc.repo.FindStartingBetween(ctx, ownerID, now, now.Add(UpcomingWindow))
	if err != nil || ap == nil {
		return nil, err
	}

	out := dto.NewAppointment(*ap, loc)
	return &out, nil
}
