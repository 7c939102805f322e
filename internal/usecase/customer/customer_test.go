package customer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
	"github.com/BruksfildServices01/appointment-manager/internal/testdb"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func details() domain.Details {
	return domain.Details{
		Name:       " Lisa Wright ",
		Address:    "123 Main",
		City:       "Phoenix",
		Country:    "US",
		PostalCode: "85001",
		Phone:      "(555) 123-4567",
	}
}

func TestCustomerLifecycle(t *testing.T) {
	db := testdb.New(t)
	repo := repository.NewCustomerGormRepository(db)
	sink := &recordingSink{}
	dispatcher := audit.NewDispatcher(sink)
	ctx := context.Background()

	save := NewSaveCustomer(repo, dispatcher)
	del := NewDeleteCustomer(repo, dispatcher)
	list := NewListCustomers(repo)

	row, err := save.Execute(ctx, SaveCustomerInput{ActorID: 1, Actor: "test", Details: details()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.Name != "Lisa Wright" || row.City != "Phoenix" {
		t.Fatalf("unexpected row %+v", row)
	}

	// moving to another city must not rename the shared Phoenix row
	other, err := save.Execute(ctx, SaveCustomerInput{ActorID: 1, Actor: "test", Details: details()})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	moved := details()
	moved.City = "Tucson"
	updated, err := save.Execute(ctx, SaveCustomerInput{
		CustomerID: row.ID,
		ActorID:    1,
		Actor:      "test",
		Details:    moved,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "Tucson" {
		t.Fatalf("city = %q", updated.City)
	}

	untouched, err := repo.GetCustomerRow(ctx, other.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if untouched.City != "Phoenix" {
		t.Fatalf("shared address was mutated: %+v", untouched)
	}

	rows, err := list.Execute(ctx, "tucson")
	if err != nil || len(rows) != 1 {
		t.Fatalf("search = %+v, %v", rows, err)
	}

	if err := del.Execute(ctx, 1, other.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	dispatcher.Close()
	want := []string{"customer_created", "customer_created", "customer_updated", "customer_deleted"}
	got := sink.actions()
	if len(got) != len(want) {
		t.Fatalf("audit actions = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("audit actions = %v, want %v", got, want)
		}
	}
}

func TestSaveCustomer_Validation(t *testing.T) {
	repo := repository.NewCustomerGormRepository(testdb.New(t))
	save := NewSaveCustomer(repo, nil)

	bad := details()
	bad.Phone = "555-123-4567"
	if _, err := save.Execute(context.Background(), SaveCustomerInput{Details: bad}); !httperr.IsBusiness(err, domain.CodeInvalidPhone) {
		t.Fatalf("expected invalid_phone, got %v", err)
	}

	if _, err := save.Execute(context.Background(), SaveCustomerInput{CustomerID: 42, Details: details()}); !httperr.IsBusiness(err, domain.CodeCustomerNotFound) {
		t.Fatalf("expected customer_not_found, got %v", err)
	}
}

func TestDeleteCustomer_WithAppointments(t *testing.T) {
	db := testdb.New(t)
	repo := repository.NewCustomerGormRepository(db)
	c := testdb.Customer(t, db, "Lisa")
	u := testdb.User(t, db, "test")

	start := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	ap := models.Appointment{
		UserID:     u.ID,
		CustomerID: c.ID,
		Title:      "Sync",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
	if err := db.Omit("User", "Customer").Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	del := NewDeleteCustomer(repo, nil)
	if err := del.Execute(context.Background(), u.ID, c.ID); !httperr.IsBusiness(err, domain.CodeCustomerHasAppointment) {
		t.Fatalf("expected customer_has_appointments, got %v", err)
	}
	if err := del.Execute(context.Background(), u.ID, 999); !httperr.IsBusiness(err, domain.CodeCustomerNotFound) {
		t.Fatalf("expected customer_not_found, got %v", err)
	}
}
