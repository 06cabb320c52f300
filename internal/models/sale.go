package models

import "time"

// Payment methods accepted at the till. Mpesa is the mobile-money rail
// and carries a transaction reference code on the sale.
const (
	PaymentCash        = "cash"
	PaymentMpesa       = "mpesa"
	PaymentInstallment = "installment"
)

// Sale is one transaction for a client: one or more line items, a payment
// method and a running paid amount. AmountPaid equals TotalAmount from the
// start for cash/mpesa sales and grows from zero as installment payments
// are recorded.
type Sale struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      uint      `gorm:"not null;index" json:"client_id"`
	SupplierID    *uint     `gorm:"index" json:"supplier_id"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	MpesaCode     string    `gorm:"size:50" json:"mpesa_code,omitempty"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	AmountPaid    float64   `gorm:"default:0" json:"amount_paid"`
	Notes         string    `gorm:"size:255" json:"notes,omitempty"`
	SaleDate      time.Time `gorm:"index" json:"sale_date"`
	CreatedAt     time.Time `json:"created_at"`

	Client       *Client       `json:"client,omitempty"`
	Supplier     *Supplier     `json:"supplier,omitempty"`
	Items        []SaleItem    `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Installments []Installment `gorm:"constraint:OnDelete:CASCADE" json:"installments,omitempty"`
}

// RemainingBalance is what the client still owes on this sale.
func (s *Sale) RemainingBalance() float64 {
	return s.TotalAmount - s.AmountPaid
}

// IsSettled reports whether the sale has been paid in full.
func (s *Sale) IsSettled() bool {
	return s.RemainingBalance() <= 0
}

// SaleItem is one line of a sale. UnitPrice snapshots the product price at
// sale time and never changes afterwards, even if the product is repriced.
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `gorm:"not null;index" json:"sale_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`

	Product *Product `json:"product,omitempty"`
}

// Installment is one scheduled partial payment within an installment-plan
// sale. Payments recorded against the sale update Sale.AmountPaid; they do
// not flip IsPaid here. The schedule and the aggregate balance are tracked
// independently.
type Installment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	SaleID    uint       `gorm:"not null;index" json:"sale_id"`
	Amount    float64    `gorm:"not null" json:"amount"`
	DueDate   time.Time  `gorm:"not null" json:"due_date"`
	IsPaid    bool       `gorm:"default:false" json:"is_paid"`
	PaidDate  *time.Time `json:"paid_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
