package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

// Repository methods return httperr business errors for missing rows and
// httperr.Storage-wrapped errors for everything the database rejects.
type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		customerID uint,
	) (*models.Customer, error)

	// -------- Appointment (create / conflict) --------
	ListOverlapping(
		ctx context.Context,
		ownerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (edit / delete) --------
	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) error

	// -------- Calendar --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		ownerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	FindStartingBetween(
		ctx context.Context,
		ownerID uint,
		from time.Time,
		to time.Time,
	) (*models.Appointment, error)
}
