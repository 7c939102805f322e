package audit

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
	"github.com/BruksfildServices01/appointment-manager/internal/testdb"
)

func uintPtr(v uint) *uint { return &v }

func TestDispatcherPersistsEvents(t *testing.T) {
	db := testdb.New(t)
	logs := New(db)

	d := NewDispatcher(logs)
	for i := 0; i < 3; i++ {
		d.Dispatch(Event{
			UserID:   uintPtr(1),
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: uintPtr(uint(i + 1)),
			Metadata: map[string]any{"n": i},
		})
	}
	d.Dispatch(Event{UserID: uintPtr(2), Action: "user_logged_in", Entity: "user"})
	d.Close()
	d.Close()

	got, total, err := logs.List(context.Background(), Query{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(got) != 3 {
		t.Fatalf("user 1 trail = %d rows (total %d), want 3", len(got), total)
	}
	if got[0].Metadata == "" {
		t.Fatalf("metadata not stored: %+v", got[0])
	}
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "noop"})
	d.Close()
}

func TestListFiltersAndPages(t *testing.T) {
	db := testdb.New(t)
	logs := New(db)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.AuditLog{
		{UserID: uintPtr(1), Action: "appointment_created", Entity: "appointment", CreatedAt: base},
		{UserID: uintPtr(1), Action: "appointment_deleted", Entity: "appointment", CreatedAt: base.Add(24 * time.Hour)},
		{UserID: uintPtr(1), Action: "customer_created", Entity: "customer", CreatedAt: base.Add(48 * time.Hour)},
		{UserID: uintPtr(2), Action: "customer_created", Entity: "customer", CreatedAt: base},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	got, total, err := logs.List(ctx, Query{UserID: 1, Entity: "appointment"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || got[0].Action != "appointment_deleted" {
		t.Fatalf("entity filter = %+v (total %d)", got, total)
	}

	got, total, err = logs.List(ctx, Query{
		UserID: 1,
		From:   base.Add(time.Hour),
		To:     base.Add(47 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || got[0].Action != "appointment_deleted" {
		t.Fatalf("date window = %+v (total %d)", got, total)
	}

	got, total, err = logs.List(ctx, Query{UserID: 1, Page: 2, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(got) != 1 || got[0].Action != "appointment_created" {
		t.Fatalf("page 2 = %+v (total %d)", got, total)
	}
}

func TestQueryNormalize(t *testing.T) {
	q := Query{Page: -1, Limit: 10_000}.Normalize()
	if q.Page != 1 || q.Limit != DefaultPageSize {
		t.Fatalf("Normalize = %+v", q)
	}
	q = Query{Page: 3, Limit: 20}.Normalize()
	if q.Page != 3 || q.Limit != 20 {
		t.Fatalf("Normalize kept = %+v", q)
	}
}
