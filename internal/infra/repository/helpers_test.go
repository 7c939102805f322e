package repository

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
	"github.com/BruksfildServices01/appointment-manager/internal/testdb"
)

func newTestDB(t *testing.T) *gorm.DB {
	return testdb.New(t)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	return testdb.User(t, db, username)
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	return testdb.Customer(t, db, name)
}

func utc(day, hour, min int) time.Time {
	return time.Date(2024, time.March, day, hour, min, 0, 0, time.UTC)
}
