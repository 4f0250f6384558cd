package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// StatError is embedded in a report in place of a count that failed.
type StatError struct {
	Error string `json:"error"`
}

// Stats maps a counter name to either an int64 or a StatError.
type Stats map[string]interface{}

type statQuery struct {
	key   string
	query func(db *gorm.DB) *gorm.DB
}

var statQueries = []statQuery{
	{"totalRooms", func(db *gorm.DB) *gorm.DB { return db.Model(&models.Room{}) }},
	{"availableRooms", func(db *gorm.DB) *gorm.DB { return db.Model(&models.Room{}).Where("is_available = ?", true) }},
	{"totalCustomers", func(db *gorm.DB) *gorm.DB { return db.Model(&models.Customer{}) }},
	{"totalBookings", func(db *gorm.DB) *gorm.DB { return db.Model(&models.Booking{}) }},
	{"pendingBookings", func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Booking{}).Where("booking_status = ?", models.BookingStatusPending)
	}},
	{"confirmedBookings", func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Booking{}).Where("booking_status = ?", models.BookingStatusConfirmed)
	}},
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Report runs every count concurrently and waits for all of them. A failing
// count does not fail the report.
func (s *StatsService) Report(ctx context.Context) Stats {
	stats := make(Stats, len(statQueries))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, q := range statQueries {
		wg.Add(1)
		go func(q statQuery) {
			defer wg.Done()

			var n int64
			err := q.query(s.DB.WithContext(ctx)).Count(&n).Error

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats[q.key] = StatError{Error: err.Error()}
				return
			}
			stats[q.key] = n
		}(q)
	}
	wg.Wait()

	return stats
}
