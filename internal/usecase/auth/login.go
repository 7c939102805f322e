package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

const (
	CodeRequiredFields     = "required_fields"
	CodeInvalidCredentials = "invalid_credentials"

	TokenTTL = 24 * time.Hour
)

// Compared against when the username is unknown so both failure paths cost
// one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type UpcomingFinder interface {
	Execute(ctx context.Context, ownerID uint, loc *time.Location) (*dto.AppointmentListDTO, error)
}

type HistoryRecorder interface {
	Record(username string) error
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type LoginInput struct {
	Username string
	Password string
	Location *time.Location
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
	Upcoming  *dto.AppointmentListDTO
}

// ======================================================
// USE CASE
// ======================================================

type Login struct {
	users    UserRepository
	upcoming UpcomingFinder
	history  HistoryRecorder
	audit    *audit.Dispatcher
	secret   []byte
	now      func() time.Time
}

func NewLogin(
	users UserRepository,
	upcoming UpcomingFinder,
	history HistoryRecorder,
	audit *audit.Dispatcher,
	secret string,
) *Login {
	return &Login{
		users:    users,
		upcoming: upcoming,
		history:  history,
		audit:    audit,
		secret:   []byte(secret),
		now:      time.Now,
	}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, httperr.ErrBusiness(CodeRequiredFields)
	}

	user, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if httperr.IsBusiness(err, repository.CodeUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
			return nil, httperr.ErrBusiness(CodeInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}
	if !user.Active {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}

	expires := uc.now().Add(TokenTTL)
	token, err := GenerateToken(user, uc.secret, uc.now(), expires)
	if err != nil {
		return nil, err
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	upcoming, err := uc.upcoming.Execute(ctx, user.ID, loc)
	if err != nil {
		return nil, err
	}

	// last step: only a login that is returned to the caller is recorded
	if err := uc.history.Record(user.Username); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in",
		Entity: "user",
	})

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expires,
		Upcoming:  upcoming,
	}, nil
}

// --------- JWT ---------

func GenerateToken(user *models.User, secret []byte, issued, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      expires.Unix(),
		"iat":      issued.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
