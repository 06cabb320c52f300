package models

import "testing"

func TestSale_RemainingBalance(t *testing.T) {
	tests := []struct {
		name string
		sale Sale
		want float64
	}{
		{"unpaid installment plan", Sale{TotalAmount: 4700, AmountPaid: 0}, 4700},
		{"partially paid", Sale{TotalAmount: 4700, AmountPaid: 1500}, 3200},
		{"settled", Sale{TotalAmount: 3200, AmountPaid: 3200}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sale.RemainingBalance(); got != tt.want {
				t.Errorf("RemainingBalance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSale_IsSettled(t *testing.T) {
	if (&Sale{TotalAmount: 100, AmountPaid: 50}).IsSettled() {
		t.Error("half-paid sale reported settled")
	}
	if !(&Sale{TotalAmount: 100, AmountPaid: 100}).IsSettled() {
		t.Error("fully paid sale not reported settled")
	}
}

func TestAccessorySale_DayTotal(t *testing.T) {
	row := AccessorySale{
		GrillTotal:     350,
		Burner300Total: 600,
		Burner450Total: 450,
		HoseTotal:      300,
	}
	if got := row.DayTotal(); got != 1700 {
		t.Errorf("DayTotal() = %f, want 1700", got)
	}
}
