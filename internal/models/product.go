package models

import "time"

// Product is a gas cylinder or accessory. SupplierID is nil for
// unbranded stock such as burners and hose pipes.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	SupplierID  *uint     `gorm:"index" json:"supplier_id"`
	Category    string    `gorm:"size:50;not null" json:"category"` // e.g. cylinder_6kg, accessory_burner
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
