package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// DefaultInstallments is the plan length used when a caller does not ask
// for a specific number of installments.
const DefaultInstallments = 3

// installmentInterval is the spacing between consecutive due dates.
const installmentInterval = 30 * 24 * time.Hour

// SaleService owns sale creation and installment payment recording.
type SaleService struct {
	db *gorm.DB
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

type SaleItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateSaleInput struct {
	ClientID        uint            `json:"client_id"`
	SupplierID      *uint           `json:"supplier_id"`
	PaymentMethod   string          `json:"payment_method"`
	MpesaCode       string          `json:"mpesa_code"`
	Notes           string          `json:"notes"`
	Items           []SaleItemInput `json:"items"`
	NumInstallments int             `json:"num_installments"`
	// SaleDate is optional; the zero value means "now".
	SaleDate time.Time `json:"sale_date"`
}

// Create validates the input, computes line subtotals from current product
// prices and persists the sale, its items and (for installment sales) the
// generated payment plan as a single transaction. Partial failure leaves
// no orphan rows.
func (s *SaleService) Create(in CreateSaleInput) (*models.Sale, error) {
	switch in.PaymentMethod {
	case models.PaymentCash, models.PaymentInstallment:
		// The reference code only makes sense on mobile-money sales.
		in.MpesaCode = ""
	case models.PaymentMpesa:
		if in.MpesaCode == "" {
			return nil, validationf("mpesa code is required for mpesa payments")
		}
	default:
		return nil, validationf("unknown payment method %q", in.PaymentMethod)
	}
	if len(in.Items) == 0 {
		return nil, validationf("sale must have at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, validationf("item quantity must be at least 1")
		}
	}

	saleDate := in.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	var sale *models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, in.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("client %d: %w", in.ClientID, ErrNotFound)
			}
			return err
		}
		if in.SupplierID != nil {
			var supplier models.Supplier
			if err := tx.First(&supplier, *in.SupplierID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("supplier %d: %w", *in.SupplierID, ErrNotFound)
				}
				return err
			}
		}

		total := 0.0
		items := make([]models.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			var product models.Product
			if err := tx.First(&product, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", it.ProductID, ErrNotFound)
				}
				return err
			}
			subtotal := product.Price * float64(it.Quantity)
			total += subtotal
			items = append(items, models.SaleItem{
				ProductID: product.ID,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		sale = &models.Sale{
			ClientID:      in.ClientID,
			SupplierID:    in.SupplierID,
			PaymentMethod: in.PaymentMethod,
			MpesaCode:     in.MpesaCode,
			TotalAmount:   total,
			Notes:         in.Notes,
			SaleDate:      saleDate,
		}
		// Cash and mpesa sales are settled at the till; installment plans
		// start at zero and grow as payments come in.
		if in.PaymentMethod != models.PaymentInstallment {
			sale.AmountPaid = total
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].SaleID = sale.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		sale.Items = items

		if in.PaymentMethod == models.PaymentInstallment {
			n := in.NumInstallments
			if n <= 0 {
				n = DefaultInstallments
			}
			plan := SplitInstallments(total, n)
			for i, amount := range plan {
				inst := models.Installment{
					SaleID:  sale.ID,
					Amount:  amount,
					DueDate: saleDate.Add(time.Duration(i+1) * installmentInterval),
				}
				if err := tx.Create(&inst).Error; err != nil {
					return err
				}
				sale.Installments = append(sale.Installments, inst)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// SplitInstallments divides total into n amounts rounded to the cent. The
// last installment absorbs the rounding remainder so the plan sums back to
// the sale total exactly.
func SplitInstallments(total float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	per := roundCents(total / float64(n))
	plan := make([]float64, n)
	for i := 0; i < n-1; i++ {
		plan[i] = per
	}
	plan[n-1] = roundCents(total - per*float64(n-1))
	return plan
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RecordInstallment adds a payment of amount against the sale's balance.
// Amounts outside (0, remaining balance] are rejected and the sale is left
// unchanged. The itemized installment schedule is deliberately not marked
// paid here; the aggregate balance and the schedule are tracked
// independently.
func (s *SaleService) RecordInstallment(saleID uint, amount float64) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale %d: %w", saleID, ErrNotFound)
		}
		return nil, err
	}
	if amount <= 0 {
		return nil, validationf("installment amount must be positive")
	}
	if amount > sale.RemainingBalance() {
		return nil, validationf("installment amount %.2f exceeds remaining balance %.2f", amount, sale.RemainingBalance())
	}
	sale.AmountPaid += amount
	if err := s.db.Model(&sale).Update("amount_paid", sale.AmountPaid).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}
