package models

import "time"

// Supplier is a gas brand the shop stocks cylinders for. Color is the
// brand color used when charting sales per supplier.
type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;unique" json:"name"`
	Color     string    `gorm:"size:50;not null" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Sales    []Sale    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
