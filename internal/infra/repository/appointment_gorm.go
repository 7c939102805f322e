package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
	return httperr.Storage(err)
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	customerID uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, customerID).Error; err != nil {
		return nil, notFoundOr(err, domain.CodeCustomerNotFound)
	}
	return &c, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOverlapping(
	ctx context.Context,
	ownerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if supportsRowLocks(r.db) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.
		Where(
			"user_id = ? AND start_time < ? AND end_time > ?",
			ownerID,
			end.UTC(),
			start.UTC(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Storage(err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	toUTC(ap)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(domain.CodeTimeConflict)
		}
		return httperr.Storage(err)
	}
	return nil
}

// --------------------------------------------------
// Appointment (edit / delete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForOwner(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, ownerID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err, domain.CodeAppointmentNotFound)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	toUTC(ap)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(domain.CodeTimeConflict)
		}
		return httperr.Storage(err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, ownerID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.CodeAppointmentNotFound)
	}
	return nil
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

// ListAppointmentsForPeriod returns every appointment of the owner that
// overlaps [start, end), customers preloaded.
func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	ownerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"user_id = ? AND start_time < ? AND end_time > ?",
			ownerID,
			end.UTC(),
			start.UTC(),
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, httperr.Storage(err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) FindStartingBetween(
	ctx context.Context,
	ownerID uint,
	from time.Time,
	to time.Time,
) (*models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"user_id = ? AND start_time >= ? AND start_time <= ?",
			ownerID,
			from.UTC(),
			to.UTC(),
		).
		Order("start_time ASC").
		Limit(1).
		Find(&apps).Error; err != nil {
		return nil, httperr.Storage(err)
	}

	if len(apps) == 0 {
		return nil, nil
	}
	return &apps[0], nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func toUTC(ap *models.Appointment) {
	ap.StartTime = ap.StartTime.UTC()
	ap.EndTime = ap.EndTime.UTC()
}

func notFoundOr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return httperr.Storage(err)
}

// SQLite has no row-level locks and rejects FOR UPDATE.
func supportsRowLocks(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
