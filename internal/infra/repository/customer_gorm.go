package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CustomerGormRepository{db: tx})
	})
	return httperr.Storage(err)
}

// --------------------------------------------------
// Address chain (get or create)
// --------------------------------------------------

func (r *CustomerGormRepository) ResolveCountry(
	ctx context.Context,
	name string,
	actor string,
) (uint, error) {

	var country models.Country
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&country).Error
	if err == nil {
		return country.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, httperr.Storage(err)
	}

	country = models.Country{
		Name:         name,
		CreatedBy:    actor,
		LastUpdateBy: actor,
	}
	if err := r.db.WithContext(ctx).Create(&country).Error; err != nil {
		return 0, httperr.Storage(err)
	}
	return country.ID, nil
}

func (r *CustomerGormRepository) ResolveCity(
	ctx context.Context,
	name string,
	countryID uint,
	actor string,
) (uint, error) {

	var city models.City
	err := r.db.WithContext(ctx).
		Where("name = ? AND country_id = ?", name, countryID).
		First(&city).Error
	if err == nil {
		return city.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, httperr.Storage(err)
	}

	city = models.City{
		Name:         name,
		CountryID:    countryID,
		CreatedBy:    actor,
		LastUpdateBy: actor,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&city).Error; err != nil {
		return 0, httperr.Storage(err)
	}
	return city.ID, nil
}

func (r *CustomerGormRepository) ResolveAddress(
	ctx context.Context,
	d domain.Details,
	cityID uint,
	actor string,
) (uint, error) {

	var addr models.Address
	err := r.db.WithContext(ctx).
		Where(
			"address = ? AND address2 = ? AND city_id = ? AND postal_code = ? AND phone = ?",
			d.Address, d.Address2, cityID, d.PostalCode, d.Phone,
		).
		First(&addr).Error
	if err == nil {
		return addr.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, httperr.Storage(err)
	}

	addr = models.Address{
		Address:      d.Address,
		Address2:     d.Address2,
		CityID:       cityID,
		PostalCode:   d.PostalCode,
		Phone:        d.Phone,
		CreatedBy:    actor,
		LastUpdateBy: actor,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&addr).Error; err != nil {
		return 0, httperr.Storage(err)
	}
	return addr.ID, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *CustomerGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return httperr.Storage(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error,
	)
}

func (r *CustomerGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFoundOr(err, domain.CodeCustomerNotFound)
	}
	return &c, nil
}

func (r *CustomerGormRepository) UpdateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return httperr.Storage(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error,
	)
}

func (r *CustomerGormRepository) DeleteCustomer(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		if httperr.IsForeignKeyViolation(res.Error) {
			return httperr.ErrBusiness(domain.CodeCustomerHasAppointment)
		}
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.CodeCustomerNotFound)
	}
	return nil
}

func (r *CustomerGormRepository) CountAppointments(
	ctx context.Context,
	customerID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, httperr.Storage(err)
	}
	return count, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const customerRowSelect = `customers.id, customers.name,
	addresses.address, addresses.address2, addresses.postal_code, addresses.phone,
	cities.name AS city, countries.name AS country`

func (r *CustomerGormRepository) rows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("customers").
		Select(customerRowSelect).
		Joins("JOIN addresses ON addresses.id = customers.address_id").
		Joins("JOIN cities ON cities.id = addresses.city_id").
		Joins("JOIN countries ON countries.id = cities.country_id")
}

func (r *CustomerGormRepository) ListCustomers(
	ctx context.Context,
	query string,
) ([]domain.Row, error) {

	q := r.rows(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where(
			`LOWER(customers.name) LIKE ? ESCAPE '\' OR addresses.phone LIKE ? ESCAPE '\' OR LOWER(cities.name) LIKE ? ESCAPE '\'`,
			like, like, like,
		)
	}

	var out []domain.Row
	if err := q.Order("customers.name ASC").Scan(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	if out == nil {
		out = []domain.Row{}
	}
	return out, nil
}

func (r *CustomerGormRepository) GetCustomerRow(
	ctx context.Context,
	id uint,
) (*domain.Row, error) {

	var out []domain.Row
	if err := r.rows(ctx).
		Where("customers.id = ?", id).
		Limit(1).
		Scan(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	if len(out) == 0 {
		return nil, httperr.ErrBusiness(domain.CodeCustomerNotFound)
	}
	return &out[0], nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
