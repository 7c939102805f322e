package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

const CodeUserNotFound = "user_not_found"

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFoundOr(err, CodeUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, CodeUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return httperr.Storage(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) ListUsernames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Order("username ASC").
		Pluck("username", &names).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
