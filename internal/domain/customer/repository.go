package customer

import (
	"context"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

// Row is a customer flattened with its address chain.
type Row struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// Get-or-create: each returns the existing row's id or inserts one.
	ResolveCountry(ctx context.Context, name, actor string) (uint, error)
	ResolveCity(ctx context.Context, name string, countryID uint, actor string) (uint, error)
	ResolveAddress(ctx context.Context, d Details, cityID uint, actor string) (uint, error)

	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
	CountAppointments(ctx context.Context, customerID uint) (int64, error)

	ListCustomers(ctx context.Context, query string) ([]Row, error)
	GetCustomerRow(ctx context.Context, id uint) (*Row, error)
}
