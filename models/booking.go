package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking statuses. A booking is created as confirmed; the status only
// changes through an edit.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

var BookingStatuses = []string{BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled}

func IsValidBookingStatus(s string) bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CustomerID      uint           `gorm:"column:customer_id;index" json:"customer_id"`
	RoomID          uint           `gorm:"column:room_id;index" json:"room_id"`
	CheckInDate     datatypes.Date `gorm:"column:check_in_date;not null" json:"check_in_date"`
	CheckOutDate    datatypes.Date `gorm:"column:check_out_date;not null" json:"check_out_date"`
	TotalAmount     float64        `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	BookingStatus   string         `gorm:"column:booking_status;type:varchar(20);default:confirmed" json:"booking_status"`
	SpecialRequests string         `gorm:"column:special_requests;type:text" json:"special_requests"`
	CreatedAt       time.Time      `json:"created_at"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

// BookingListItem is a booking row joined with the customer and room columns
// the dashboard shows next to it.
type BookingListItem struct {
	ID              uint           `json:"id"`
	CustomerID      uint           `json:"customer_id"`
	RoomID          uint           `json:"room_id"`
	CheckInDate     datatypes.Date `json:"check_in_date"`
	CheckOutDate    datatypes.Date `json:"check_out_date"`
	TotalAmount     float64        `json:"total_amount"`
	BookingStatus   string         `json:"booking_status"`
	SpecialRequests string         `json:"special_requests"`
	CreatedAt       time.Time      `json:"created_at"`

	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
}
