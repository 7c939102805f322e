package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type UserCreator interface {
	UserRepository
	Create(ctx context.Context, u *models.User) error
}

// EnsureUser creates username with a bcrypt hash of password unless it
// already exists. It reports whether a user was created.
func EnsureUser(ctx context.Context, users UserCreator, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	_, err := users.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !httperr.IsBusiness(err, repository.CodeUserNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Active:       true,
	}
	if err := users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}
