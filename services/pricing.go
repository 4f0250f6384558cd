package services

import (
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"

	"hotel-booking/failure"
)

const dateLayout = "2006-01-02"

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, failure.ErrMissingField.WithMessage(field + " is required")
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, failure.ErrInvalidDate.WithMessage("invalid " + field + " format; expected YYYY-MM-DD")
}

// Nights is the number of nights charged for a stay: partial days round up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// TotalAmount is nightly price times nights, rounded to cents.
func TotalAmount(pricePerNight float64, nights int) float64 {
	return math.Round(pricePerNight*float64(nights)*100) / 100
}

// parseStay parses both dates and enforces check-out strictly after check-in.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate("check_in_date", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate("check_out_date", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, failure.ErrInvalidDateRange
	}
	return in, out, nil
}

// calendarDate keeps the year, month and day of t as written in t's own zone
// and pins them to UTC midnight, the zone the database connection uses.
func calendarDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
