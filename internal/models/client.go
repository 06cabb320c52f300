package models

import "time"

// Client is a customer identified by phone number.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:15;not null;unique" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"created_at"`

	Sales []Sale `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
