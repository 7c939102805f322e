package testdb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

type recordingWriter struct {
	lines []string
}

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestLogger_SkipsRecordNotFound(t *testing.T) {
	w := &recordingWriter{}
	l := newLogger(w)

	sql := func() (string, int64) { return "SELECT 1", 0 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	if len(w.lines) != 0 {
		t.Fatalf("record not found was logged: %v", w.lines)
	}

	l.Trace(ctx, time.Now(), sql, errors.New("no such table: customers"))
	if len(w.lines) != 1 {
		t.Fatalf("sql error not logged: %v", w.lines)
	}
}

func TestNew_MigratesSchema(t *testing.T) {
	db := New(t)
	for _, table := range []string{"users", "customers", "appointments", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing", table)
		}
	}
}
