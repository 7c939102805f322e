package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/cache"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.ReportCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.ReportCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID, ownerID); err != nil {
		return err
	}

	uc.cache.InvalidateAll(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
