package models

import "gorm.io/datatypes"

// Service is an extra (breakfast, spa, transfer...) charged to a booking.
type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	BookingID   uint           `gorm:"column:booking_id;index" json:"booking_id"`
	ServiceName string         `gorm:"column:service_name;type:varchar(100);not null" json:"service_name"`
	ServiceCost float64        `gorm:"column:service_cost;type:decimal(10,2);not null" json:"service_cost"`
	ServiceDate datatypes.Date `gorm:"column:service_date" json:"service_date"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
