package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// AccessoryService owns the one-row-per-day accessory ledger.
type AccessoryService struct {
	db *gorm.DB
}

func NewAccessoryService(db *gorm.DB) *AccessoryService {
	return &AccessoryService{db: db}
}

// DayOf truncates t to UTC midnight, the canonical form of a ledger date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type AccessoryInput struct {
	GrillQuantity int     `json:"grill_quantity"`
	GrillTotal    float64 `json:"grill_total"`

	Burner300Quantity int     `json:"burner_300_quantity"`
	Burner300Total    float64 `json:"burner_300_total"`
	Burner350Quantity int     `json:"burner_350_quantity"`
	Burner350Total    float64 `json:"burner_350_total"`
	Burner450Quantity int     `json:"burner_450_quantity"`
	Burner450Total    float64 `json:"burner_450_total"`
	Burner600Quantity int     `json:"burner_600_quantity"`
	Burner600Total    float64 `json:"burner_600_total"`

	Regulator6KgQuantity  int     `json:"regulator_6kg_quantity"`
	Regulator6KgTotal     float64 `json:"regulator_6kg_total"`
	Regulator13KgQuantity int     `json:"regulator_13kg_quantity"`
	Regulator13KgTotal    float64 `json:"regulator_13kg_total"`

	HoseQuantity int     `json:"hose_quantity"`
	HoseTotal    float64 `json:"hose_total"`

	Notes string `json:"notes"`
}

func (in AccessoryInput) apply(row *models.AccessorySale) {
	row.GrillQuantity = in.GrillQuantity
	row.GrillTotal = in.GrillTotal
	row.Burner300Quantity = in.Burner300Quantity
	row.Burner300Total = in.Burner300Total
	row.Burner350Quantity = in.Burner350Quantity
	row.Burner350Total = in.Burner350Total
	row.Burner450Quantity = in.Burner450Quantity
	row.Burner450Total = in.Burner450Total
	row.Burner600Quantity = in.Burner600Quantity
	row.Burner600Total = in.Burner600Total
	row.Regulator6KgQuantity = in.Regulator6KgQuantity
	row.Regulator6KgTotal = in.Regulator6KgTotal
	row.Regulator13KgQuantity = in.Regulator13KgQuantity
	row.Regulator13KgTotal = in.Regulator13KgTotal
	row.HoseQuantity = in.HoseQuantity
	row.HoseTotal = in.HoseTotal
	row.Notes = in.Notes
}

// Create records a day's accessory sales. A second entry for the same
// calendar day is rejected; callers should route the caller to the
// existing row instead (ForDate gives them its id).
func (s *AccessoryService) Create(day time.Time, in AccessoryInput) (*models.AccessorySale, error) {
	day = DayOf(day)
	var count int64
	if err := s.db.Model(&models.AccessorySale{}).Where("sale_date = ?", day).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationf("accessory entry for %s already exists", day.Format("2006-01-02"))
	}
	row := models.AccessorySale{SaleDate: day}
	in.apply(&row)
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update edits an existing ledger row in place.
func (s *AccessoryService) Update(id uint, in AccessoryInput) (*models.AccessorySale, error) {
	var row models.AccessorySale
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("accessory sale %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	in.apply(&row)
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ForDate returns the ledger row for the given calendar day.
func (s *AccessoryService) ForDate(day time.Time) (*models.AccessorySale, error) {
	var row models.AccessorySale
	err := s.db.Where("sale_date = ?", DayOf(day)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("accessory sale for %s: %w", DayOf(day).Format("2006-01-02"), ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AccessoryTotals is the summed quantity/amount pair for one category.
type AccessoryTotals struct {
	Quantity int     `json:"qty"`
	Amount   float64 `json:"amount"`
}

// AccessoryReport aggregates the eight ledger categories over a lookback
// window.
type AccessoryReport struct {
	Period string `json:"period"`

	Grill         AccessoryTotals `json:"grill"`
	Burner300     AccessoryTotals `json:"burner_300"`
	Burner350     AccessoryTotals `json:"burner_350"`
	Burner450     AccessoryTotals `json:"burner_450"`
	Burner600     AccessoryTotals `json:"burner_600"`
	Regulator6Kg  AccessoryTotals `json:"regulator_6kg"`
	Regulator13Kg AccessoryTotals `json:"regulator_13kg"`
	Hose          AccessoryTotals `json:"hose"`
}

// Report sums every category over the period's lookback window ending at
// now: "week" (the default when period is missing) covers 7 days back,
// "month" 30 and "day" 1. Unknown periods fall back to "day" rather than
// failing.
func (s *AccessoryService) Report(period string, now time.Time) (*AccessoryReport, error) {
	var days int
	switch period {
	case "", "week":
		period = "week"
		days = 7
	case "month":
		days = 30
	default:
		period = "day"
		days = 1
	}
	start := now.AddDate(0, 0, -days)

	var rows []models.AccessorySale
	if err := s.db.Where("sale_date >= ?", start).Find(&rows).Error; err != nil {
		return nil, err
	}

	report := AccessoryReport{Period: period}
	for _, row := range rows {
		add(&report.Grill, row.GrillQuantity, row.GrillTotal)
		add(&report.Burner300, row.Burner300Quantity, row.Burner300Total)
		add(&report.Burner350, row.Burner350Quantity, row.Burner350Total)
		add(&report.Burner450, row.Burner450Quantity, row.Burner450Total)
		add(&report.Burner600, row.Burner600Quantity, row.Burner600Total)
		add(&report.Regulator6Kg, row.Regulator6KgQuantity, row.Regulator6KgTotal)
		add(&report.Regulator13Kg, row.Regulator13KgQuantity, row.Regulator13KgTotal)
		add(&report.Hose, row.HoseQuantity, row.HoseTotal)
	}
	return &report, nil
}

func add(t *AccessoryTotals, qty int, amount float64) {
	t.Quantity += qty
	t.Amount += amount
}
