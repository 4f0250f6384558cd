// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking/config"
	"hotel-booking/models"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
// Foreign keys are enforced like on MySQL.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// Logger discards everything.
func Logger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

// FailUpdatesOn makes every UPDATE against table fail with err.
func FailUpdatesOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("testutil:fail_update_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}))
}

// FailQueriesOn makes every SELECT against table fail with err.
func FailQueriesOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("testutil:fail_query_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}))
}

// SeedRoom inserts an available room.
func SeedRoom(t *testing.T, db *gorm.DB, number string, price float64) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		RoomType:      models.RoomTypeDouble,
		PricePerNight: price,
		Capacity:      2,
		Amenities:     "WiFi, TV",
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

// SeedCustomer inserts a customer with the given email.
func SeedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	c := models.Customer{FirstName: "Ada", LastName: "Lovelace", Email: email, Phone: "555-0100", Address: "12 St James's Sq"}
	require.NoError(t, db.Create(&c).Error)
	return c
}
