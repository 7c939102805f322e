package customer

import (
	"context"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
)

type DeleteCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCustomer(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteCustomer {
	return &DeleteCustomer{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteCustomer) Execute(
	ctx context.Context,
	actorID uint,
	customerID uint,
) error {

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetCustomer(ctx, customerID); err != nil {
			return err
		}

		n, err := tx.CountAppointments(ctx, customerID)
		if err != nil {
			return err
		}
		if n > 0 {
			return httperr.ErrBusiness(domain.CodeCustomerHasAppointment)
		}

		return tx.DeleteCustomer(ctx, customerID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &customerID,
	})

	return nil
}
