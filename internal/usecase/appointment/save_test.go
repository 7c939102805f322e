package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
	"github.com/BruksfildServices01/appointment-manager/internal/testdb"
)

type fixture struct {
	repo     *repository.AppointmentGormRepository
	save     *SaveAppointment
	user     *models.User
	customer *models.Customer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := testdb.New(t)
	repo := repository.NewAppointmentGormRepository(db)

	hours, err := domain.NewBusinessHours("09:00", "18:00", time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	return fixture{
		repo:     repo,
		save:     NewSaveAppointment(repo, hours, nil, nil),
		user:     testdb.User(t, db, "test"),
		customer: testdb.Customer(t, db, "Lisa"),
	}
}

func (f fixture) input(start, end string) SaveAppointmentInput {
	return SaveAppointmentInput{
		OwnerID:    f.user.ID,
		Actor:      f.user.Username,
		CustomerID: f.customer.ID,
		Fields: domain.Fields{
			Title:       "Sync",
			Description: "weekly",
			Location:    "Phoenix",
			Contact:     "alice",
			Type:        "Scrum",
			URL:         "https://example.com",
		},
		Schedule: domain.Schedule{
			StartDate: "2024-03-12",
			StartTime: start,
			EndDate:   "2024-03-12",
			EndTime:   end,
		},
		Timezone: "UTC",
	}
}

func TestSaveAppointment_WorkedExample(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.save.Execute(ctx, f.input("10:00 AM", "11:00 AM"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	_, err = f.save.Execute(ctx, f.input("10:30 AM", "11:30 AM"))
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Appointment.ID != first.ID {
		t.Fatalf("conflict reported %d, want %d", conflict.Appointment.ID, first.ID)
	}

	if _, err := f.save.Execute(ctx, f.input("8:00 AM", "9:00 AM")); !httperr.IsBusiness(err, domain.CodeOutsideBusinessHours) {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}

	if _, err := f.save.Execute(ctx, f.input("11:00 AM", "12:00 PM")); err != nil {
		t.Fatalf("adjacent slot should save: %v", err)
	}
}

func TestSaveAppointment_EditOwnSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.save.Execute(ctx, f.input("10:00 AM", "11:00 AM"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := f.input("10:30 AM", "11:30 AM")
	in.AppointmentID = ap.ID
	in.Fields.Title = "Moved"

	edited, err := f.save.Execute(ctx, in)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.ID != ap.ID || edited.Title != "Moved" {
		t.Fatalf("unexpected edit result %+v", edited)
	}

	stored, err := f.repo.GetAppointmentForOwner(ctx, ap.ID, f.user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.StartTime.Equal(time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("stored start = %v", stored.StartTime)
	}
}

func TestSaveAppointment_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	missing := f.input("10:00 AM", "11:00 AM")
	missing.Fields.URL = " "
	if _, err := f.save.Execute(ctx, missing); !httperr.IsBusiness(err, domain.CodeRequiredFields) {
		t.Fatalf("expected required_fields, got %v", err)
	}

	reversed := f.input("11:00 AM", "10:00 AM")
	if _, err := f.save.Execute(ctx, reversed); !httperr.IsBusiness(err, domain.CodeInvalidInterval) {
		t.Fatalf("expected invalid_interval, got %v", err)
	}

	noCustomer := f.input("10:00 AM", "11:00 AM")
	noCustomer.CustomerID = 999
	if _, err := f.save.Execute(ctx, noCustomer); !httperr.IsBusiness(err, domain.CodeCustomerNotFound) {
		t.Fatalf("expected customer_not_found, got %v", err)
	}

	ghost := f.input("10:00 AM", "11:00 AM")
	ghost.AppointmentID = 999
	if _, err := f.save.Execute(ctx, ghost); !httperr.IsBusiness(err, domain.CodeAppointmentNotFound) {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestSaveAppointment_TimezoneConvertsBeforeHoursCheck(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	f := newFixture(t)

	// 8:00 AM in New York is 12:00 UTC, inside UTC business hours.
	in := f.input("8:00 AM", "9:00 AM")
	in.Timezone = ny.String()

	ap, err := f.save.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ap.StartTime.Location().String() != ny.String() || ap.StartTime.Hour() != 8 {
		t.Fatalf("expected result rendered in New York, got %v", ap.StartTime)
	}
	if ap.StartTime.UTC().Hour() != 12 {
		t.Fatalf("expected 12:00 UTC, got %v", ap.StartTime.UTC())
	}
}

func TestListAndUpcoming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.save.Execute(ctx, f.input("10:00 AM", "11:00 AM")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list := NewListAppointmentsInRange(f.repo)
	res, err := list.Execute(ctx, f.user.ID, domain.Period{
		View:   domain.ViewWeek,
		Anchor: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	}, time.UTC)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Appointments) != 1 || res.Appointments[0].CustomerName != "Lisa" {
		t.Fatalf("unexpected week %+v", res.Appointments)
	}
	if res.Previous != "2024-03-07" || res.Next != "2024-03-21" {
		t.Fatalf("navigation = %s / %s", res.Previous, res.Next)
	}

	upcoming := NewFindUpcoming(f.repo)
	upcoming.now = func() time.Time { return time.Date(2024, 3, 12, 9, 50, 0, 0, time.UTC) }

	got, err := upcoming.Execute(ctx, f.user.ID, time.UTC)
	if err != nil || got == nil {
		t.Fatalf("expected upcoming appointment, got %v, %v", got, err)
	}

	upcoming.now = func() time.Time { return time.Date(2024, 3, 12, 9, 40, 0, 0, time.UTC) }
	if got, _ := upcoming.Execute(ctx, f.user.ID, time.UTC); got != nil {
		t.Fatalf("20 minutes ahead is outside the window, got %+v", got)
	}
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.save.Execute(ctx, f.input("10:00 AM", "11:00 AM"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	del := NewDeleteAppointment(f.repo, nil, nil)
	if err := del.Execute(ctx, f.user.ID, ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// the slot is free again
	if _, err := f.save.Execute(ctx, f.input("10:00 AM", "11:00 AM")); err != nil {
		t.Fatalf("re-create: %v", err)
	}
}
