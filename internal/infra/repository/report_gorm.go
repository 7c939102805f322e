package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/report"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type ReportGormRepository struct {
	db    *gorm.DB
	users *UserGormRepository
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db, users: NewUserGormRepository(db)}
}

// CountTypesBetween groups appointments starting in [from, to) by type.
func (r *ReportGormRepository) CountTypesBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]domain.TypeCount, error) {

	var out []domain.TypeCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("type, COUNT(*) AS count").
		Where("start_time >= ? AND start_time < ?", from.UTC(), to.UTC()).
		Group("type").
		Order("type ASC").
		Scan(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	if out == nil {
		out = []domain.TypeCount{}
	}
	return out, nil
}

func (r *ReportGormRepository) ListUsernames(ctx context.Context) ([]string, error) {
	return r.users.ListUsernames(ctx)
}

func (r *ReportGormRepository) ListByUsername(
	ctx context.Context,
	username string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN users ON users.id = appointments.user_id").
		Where("users.username = ?", username).
		Order("appointments.start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return apps, nil
}

func (r *ReportGormRepository) ListContacts(ctx context.Context) ([]string, error) {
	var contacts []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Distinct("contact").
		Order("contact ASC").
		Pluck("contact", &contacts).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	if contacts == nil {
		contacts = []string{}
	}
	return contacts, nil
}

func (r *ReportGormRepository) ListByContact(
	ctx context.Context,
	contact string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("contact = ?", contact).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
