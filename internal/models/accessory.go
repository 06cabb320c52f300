package models

import "time"

// AccessorySale is the daily aggregate ledger for non-cylinder sales.
// One row per calendar day: SaleDate is stored truncated to UTC midnight
// and carries a unique index.
type AccessorySale struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	SaleDate time.Time `gorm:"not null;uniqueIndex" json:"sale_date"`

	GrillQuantity int     `gorm:"default:0" json:"grill_quantity"`
	GrillTotal    float64 `gorm:"default:0" json:"grill_total"`

	Burner300Quantity int     `gorm:"default:0" json:"burner_300_quantity"`
	Burner300Total    float64 `gorm:"default:0" json:"burner_300_total"`
	Burner350Quantity int     `gorm:"default:0" json:"burner_350_quantity"`
	Burner350Total    float64 `gorm:"default:0" json:"burner_350_total"`
	Burner450Quantity int     `gorm:"default:0" json:"burner_450_quantity"`
	Burner450Total    float64 `gorm:"default:0" json:"burner_450_total"`
	Burner600Quantity int     `gorm:"default:0" json:"burner_600_quantity"`
	Burner600Total    float64 `gorm:"default:0" json:"burner_600_total"`

	Regulator6KgQuantity  int     `gorm:"default:0" json:"regulator_6kg_quantity"`
	Regulator6KgTotal     float64 `gorm:"default:0" json:"regulator_6kg_total"`
	Regulator13KgQuantity int     `gorm:"default:0" json:"regulator_13kg_quantity"`
	Regulator13KgTotal    float64 `gorm:"default:0" json:"regulator_13kg_total"`

	HoseQuantity int     `gorm:"default:0" json:"hose_quantity"`
	HoseTotal    float64 `gorm:"default:0" json:"hose_total"`

	Notes     string    `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayTotal sums the amounts across all accessory categories for the row.
func (a *AccessorySale) DayTotal() float64 {
	return a.GrillTotal +
		a.Burner300Total + a.Burner350Total + a.Burner450Total + a.Burner600Total +
		a.Regulator6KgTotal + a.Regulator13KgTotal +
		a.HoseTotal
}
