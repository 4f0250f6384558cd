package models

import "time"

// Room types accepted by the inventory.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
	RoomTypeDeluxe = "deluxe"
)

var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe}

// IsValidRoomType reports whether t is one of RoomTypes.
func IsValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomNumber    string    `gorm:"column:room_number;uniqueIndex;type:varchar(10);not null" json:"room_number"`
	RoomType      string    `gorm:"column:room_type;type:varchar(10);not null" json:"room_type"`
	PricePerNight float64   `gorm:"column:price_per_night;type:decimal(10,2);not null" json:"price_per_night"`
	Capacity      int       `gorm:"column:capacity;not null" json:"capacity"`
	Amenities     string    `gorm:"column:amenities;type:text" json:"amenities"`
	IsAvailable   bool      `gorm:"column:is_available;default:true" json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}
