package customer

import (
	"context"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type SaveCustomerInput struct {
	// Zero creates a new customer.
	CustomerID uint

	ActorID uint
	Actor   string

	Details domain.Details
}

type SaveCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveCustomer(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SaveCustomer {
	return &SaveCustomer{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the form, resolves country -> city -> address (reusing
// matching rows) and points the customer at the resulting address.
func (uc *SaveCustomer) Execute(
	ctx context.Context,
	in SaveCustomerInput,
) (*domain.Row, error) {

	d := in.Details.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var customerID uint

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		c := &models.Customer{
			Active:    true,
			CreatedBy: in.Actor,
		}
		if in.CustomerID != 0 {
			existing, err := tx.GetCustomer(ctx, in.CustomerID)
			if err != nil {
				return err
			}
			c = existing
		}

		countryID, err := tx.ResolveCountry(ctx, d.Country, in.Actor)
		if err != nil {
			return err
		}
		cityID, err := tx.ResolveCity(ctx, d.City, countryID, in.Actor)
		if err != nil {
			return err
		}
		addressID, err := tx.ResolveAddress(ctx, d, cityID, in.Actor)
		if err != nil {
			return err
		}

		c.Name = d.Name
		c.AddressID = addressID
		c.LastUpdateBy = in.Actor

		if in.CustomerID == 0 {
			err = tx.CreateCustomer(ctx, c)
		} else {
			err = tx.UpdateCustomer(ctx, c)
		}
		if err != nil {
			return err
		}

		customerID = c.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "customer_created"
	if in.CustomerID != 0 {
		action = "customer_updated"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   action,
		Entity:   "customer",
		EntityID: &customerID,
	})

	return uc.repo.GetCustomerRow(ctx, customerID)
}
