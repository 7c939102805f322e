// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/appointment-manager/internal/db"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newLogger(testWriter{t}),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// every pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testWriter sends gorm output to the test log, shown only on failure or -v.
type testWriter struct {
	t testing.TB
}

func (w testWriter) Printf(format string, args ...interface{}) {
	w.t.Helper()
	w.t.Logf(format, args...)
}

// newLogger reports real SQL errors and slow queries but not the misses
// that get-or-create lookups expect.
func newLogger(w gormlogger.Writer) gormlogger.Interface {
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Customer inserts a customer with a fresh address in Phoenix, US.
func Customer(t testing.TB, db *gorm.DB, name string) *models.Customer {
	t.Helper()

	country := models.Country{Name: "US"}
	if err := db.Where("name = ?", country.Name).FirstOrCreate(&country).Error; err != nil {
		t.Fatalf("seed country: %v", err)
	}
	city := models.City{Name: "Phoenix", CountryID: country.ID}
	if err := db.Where("name = ? AND country_id = ?", city.Name, city.CountryID).FirstOrCreate(&city).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	addr := models.Address{Address: "1 Main", CityID: city.ID, PostalCode: "85001", Phone: "(555) 123-4567"}
	if err := db.Omit("City").Create(&addr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	c := &models.Customer{Name: name, AddressID: addr.ID, Active: true}
	if err := db.Omit("Address").Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

// User inserts an active user with an unusable password hash.
func User(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	u := &models.User{Username: username, PasswordHash: "-", Active: true}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
