package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

func newAppointment(owner, customer uint, start, end time.Time) *models.Appointment {
	return &models.Appointment{
		UserID:      owner,
		CustomerID:  customer,
		Title:       "Sync",
		Description: "weekly",
		Location:    "Phoenix",
		Contact:     "alice",
		Type:        "Scrum",
		URL:         "https://example.com",
		StartTime:   start,
		EndTime:     end,
	}
}

func TestAppointmentRepo_ListOverlappingIsHalfOpen(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "test")
	other := seedUser(t, db, "other")
	c := seedCustomer(t, db, "Lisa")

	if err := repo.CreateAppointment(ctx, newAppointment(u.ID, c.ID, utc(12, 10, 0), utc(12, 11, 0))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.CreateAppointment(ctx, newAppointment(other.ID, c.ID, utc(12, 10, 0), utc(12, 11, 0))); err != nil {
		t.Fatalf("create other: %v", err)
	}

	got, err := repo.ListOverlapping(ctx, u.ID, utc(12, 10, 30), utc(12, 11, 30))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].UserID != u.ID {
		t.Fatalf("expected the owner's appointment only, got %+v", got)
	}

	adjacent, err := repo.ListOverlapping(ctx, u.ID, utc(12, 11, 0), utc(12, 12, 0))
	if err != nil {
		t.Fatalf("list adjacent: %v", err)
	}
	if len(adjacent) != 0 {
		t.Fatalf("adjacent slot must not overlap, got %d", len(adjacent))
	}
}

func TestAppointmentRepo_OwnerScopedEditAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "test")
	intruder := seedUser(t, db, "intruder")
	c := seedCustomer(t, db, "Lisa")

	ap := newAppointment(u.ID, c.ID, utc(12, 10, 0), utc(12, 11, 0))
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetAppointmentForOwner(ctx, ap.ID, intruder.ID); !httperr.IsBusiness(err, domain.CodeAppointmentNotFound) {
		t.Fatalf("expected not found for another owner, got %v", err)
	}
	if err := repo.DeleteAppointment(ctx, ap.ID, intruder.ID); !httperr.IsBusiness(err, domain.CodeAppointmentNotFound) {
		t.Fatalf("expected not found deleting another owner's row, got %v", err)
	}

	if err := repo.DeleteAppointment(ctx, ap.ID, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteAppointment(ctx, ap.ID, u.ID); !httperr.IsBusiness(err, domain.CodeAppointmentNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestAppointmentRepo_PeriodAndUpcoming(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "test")
	c := seedCustomer(t, db, "Lisa")

	for _, day := range []int{4, 12, 29} {
		if err := repo.CreateAppointment(ctx, newAppointment(u.ID, c.ID, utc(day, 10, 0), utc(day, 11, 0))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	week, err := repo.ListAppointmentsForPeriod(ctx, u.ID, utc(11, 0, 0), utc(18, 0, 0))
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(week) != 1 || week[0].Customer.Name != "Lisa" {
		t.Fatalf("expected one appointment with customer preloaded, got %+v", week)
	}

	next, err := repo.FindStartingBetween(ctx, u.ID, utc(12, 9, 50), utc(12, 10, 5))
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if next == nil || !next.StartTime.Equal(utc(12, 10, 0)) {
		t.Fatalf("expected the 10:00 appointment, got %+v", next)
	}

	none, err := repo.FindStartingBetween(ctx, u.ID, utc(12, 11, 0), utc(12, 11, 15))
	if err != nil || none != nil {
		t.Fatalf("expected no upcoming appointment, got %+v, %v", none, err)
	}
}

func TestAppointmentRepo_MissingCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	if _, err := repo.GetCustomer(context.Background(), 42); !httperr.IsBusiness(err, domain.CodeCustomerNotFound) {
		t.Fatalf("expected customer_not_found, got %v", err)
	}
}
