package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Email     string    `gorm:"column:email;uniqueIndex;type:varchar(100);not null" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Address   string    `gorm:"column:address;type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
