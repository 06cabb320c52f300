package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

type reportFixtures struct {
	topGas, kGas models.Supplier
	sixNew       models.Product
	sixRefill    models.Product
	twelveNew    models.Product
	burner       models.Product
	john, mary   models.Client
}

func seedReportFixtures(t *testing.T, db *gorm.DB) reportFixtures {
	t.Helper()
	f := reportFixtures{
		topGas: models.Supplier{Name: "Top Gas", Color: "red"},
		kGas:   models.Supplier{Name: "K-Gas", Color: "black"},
		john:   models.Client{Name: "John Kariuki", Phone: "0712345678"},
		mary:   models.Client{Name: "Mary Ochieng", Phone: "0701234567"},
	}
	for _, m := range []any{&f.topGas, &f.kGas, &f.john, &f.mary} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	f.sixNew = models.Product{Name: "Gas Cylinder 6Kg - New", SupplierID: &f.topGas.ID, Category: "cylinder_6kg", Price: 3200}
	f.sixRefill = models.Product{Name: "Gas Cylinder 6Kg - Refill", SupplierID: &f.topGas.ID, Category: "cylinder_6kg_refill", Price: 1200}
	f.twelveNew = models.Product{Name: "Gas Cylinder 12Kg - New", SupplierID: &f.kGas.ID, Category: "cylinder_12kg", Price: 5500}
	f.burner = models.Product{Name: "Burner (Ksh 450)", Category: "accessory_burner", Price: 450}
	for _, m := range []any{&f.sixNew, &f.sixRefill, &f.twelveNew, &f.burner} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return f
}

// createSaleAt inserts a cash sale with a fixed total on the given day.
func createSaleAt(t *testing.T, db *gorm.DB, client models.Client, supplierID *uint, total float64, day time.Time) models.Sale {
	t.Helper()
	sale := models.Sale{
		ClientID:      client.ID,
		SupplierID:    supplierID,
		PaymentMethod: models.PaymentCash,
		TotalAmount:   total,
		AmountPaid:    total,
		SaleDate:      day,
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("sale: %v", err)
	}
	return sale
}

func TestSales_RangeTotals(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	day := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, day)
	createSaleAt(t, db, f.john, &f.topGas.ID, 200, day.AddDate(0, 0, 1))
	createSaleAt(t, db, f.mary, &f.topGas.ID, 300, day.AddDate(0, 0, 2))

	summary, err := svc.Sales(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if summary.TotalSales != 3 {
		t.Errorf("TotalSales = %d, want 3", summary.TotalSales)
	}
	if !almostEqual(summary.TotalRevenue, 600) {
		t.Errorf("TotalRevenue = %f, want 600", summary.TotalRevenue)
	}
	if !almostEqual(summary.AverageSale, 200) {
		t.Errorf("AverageSale = %f, want 200", summary.AverageSale)
	}
	if !almostEqual(summary.BySupplier["Top Gas"], 600) {
		t.Errorf("BySupplier = %v", summary.BySupplier)
	}
	if !almostEqual(summary.ByPaymentMethod[models.PaymentCash], 600) {
		t.Errorf("ByPaymentMethod = %v", summary.ByPaymentMethod)
	}
	if len(summary.DailySales) != 3 {
		t.Fatalf("DailySales = %v, want 3 points", summary.DailySales)
	}
	for i := 1; i < len(summary.DailySales); i++ {
		if summary.DailySales[i-1].Date >= summary.DailySales[i].Date {
			t.Errorf("DailySales not chronological: %v", summary.DailySales)
		}
	}
	if summary.DailySales[0].Count != 1 || !almostEqual(summary.DailySales[0].Amount, 100) {
		t.Errorf("first point = %+v", summary.DailySales[0])
	}
}

func TestSales_EmptyRange(t *testing.T) {
	db := setupTestDB(t)
	seedReportFixtures(t, db)
	svc := NewReportService(db)

	summary, err := svc.Sales(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if summary.TotalSales != 0 || summary.TotalRevenue != 0 {
		t.Errorf("expected zero totals, got %+v", summary)
	}
	if summary.AverageSale != 0 {
		t.Errorf("AverageSale = %f, want 0 for empty range", summary.AverageSale)
	}
	if summary.YoYGrowth != 0 {
		t.Errorf("YoYGrowth = %f, want 0", summary.YoYGrowth)
	}
	// Product-type buckets are always present, zero-valued.
	for _, bucket := range []string{"6Kg New", "6Kg Refill", "12Kg New", "12Kg Refill", "Accessories"} {
		if v, ok := summary.ByProductType[bucket]; !ok || v != 0 {
			t.Errorf("bucket %q = %v (present=%v), want 0", bucket, v, ok)
		}
	}
	if len(summary.DailySales) != 0 || len(summary.TopClients) != 0 {
		t.Errorf("expected empty series, got %+v", summary)
	}
}

func TestSales_SupplierFilter(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	day := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, day)
	createSaleAt(t, db, f.john, &f.kGas.ID, 500, day)

	summary, err := svc.Sales(day, day, f.kGas.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if summary.TotalSales != 1 || !almostEqual(summary.TotalRevenue, 500) {
		t.Errorf("filtered summary = %+v", summary)
	}
}

func TestSales_YoYGrowth(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	// No prior-year revenue: growth stays 0 regardless of current revenue.
	createSaleAt(t, db, f.john, &f.topGas.ID, 150, from.AddDate(0, 0, 5))
	summary, err := svc.Sales(from, to, 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if summary.YoYGrowth != 0 {
		t.Errorf("YoYGrowth = %f, want 0 with empty prior year", summary.YoYGrowth)
	}

	// Prior year 100, current 150: +50%.
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, from.AddDate(-1, 0, 5))
	summary, err = svc.Sales(from, to, 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !almostEqual(summary.YoYGrowth, 50) {
		t.Errorf("YoYGrowth = %f, want 50", summary.YoYGrowth)
	}
}

func TestSales_YoYGrowthIgnoresSupplierFilterForPriorYear(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	// Current range: Top Gas only. Prior year: K-Gas only. The supplier
	// filter narrows the current range but never the prior-year baseline.
	createSaleAt(t, db, f.john, &f.topGas.ID, 150, from.AddDate(0, 0, 5))
	createSaleAt(t, db, f.mary, &f.kGas.ID, 100, from.AddDate(-1, 0, 5))

	summary, err := svc.Sales(from, to, f.topGas.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !almostEqual(summary.YoYGrowth, 50) {
		t.Errorf("YoYGrowth = %f, want 50 against the unfiltered prior year", summary.YoYGrowth)
	}
}

func TestSales_LeapDayFallsBackToZeroGrowth(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	// 2024-02-29 has no counterpart in 2023.
	leap := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, leap)
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, leap.AddDate(-1, 0, -1)) // prior-year revenue exists

	summary, err := svc.Sales(leap, leap, 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if summary.YoYGrowth != 0 {
		t.Errorf("YoYGrowth = %f, want 0 on invalid year shift", summary.YoYGrowth)
	}
}

func TestShiftYearBack(t *testing.T) {
	tests := []struct {
		in    time.Time
		want  time.Time
		valid bool
	}{
		{time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), time.Time{}, false},
		{time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		got, ok := shiftYearBack(tt.in)
		if ok != tt.valid {
			t.Errorf("shiftYearBack(%v) valid = %v, want %v", tt.in, ok, tt.valid)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("shiftYearBack(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSales_ProductTypeBuckets(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	saleSvc := NewSaleService(db)
	svc := NewReportService(db)

	day := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	_, err := saleSvc.Create(CreateSaleInput{
		ClientID:      f.john.ID,
		SupplierID:    &f.topGas.ID,
		PaymentMethod: models.PaymentCash,
		Items: []SaleItemInput{
			{ProductID: f.sixNew.ID, Quantity: 1},    // 3200 -> 6Kg New
			{ProductID: f.sixRefill.ID, Quantity: 2}, // 2400 -> 6Kg Refill
			{ProductID: f.twelveNew.ID, Quantity: 1}, // 5500 -> 12Kg New
			{ProductID: f.burner.ID, Quantity: 3},    // 1350 -> Accessories
		},
		SaleDate: day,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summary, err := svc.Sales(day, day, 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	want := map[string]float64{
		"6Kg New":     3200,
		"6Kg Refill":  2400,
		"12Kg New":    5500,
		"12Kg Refill": 0,
		"Accessories": 1350,
	}
	for bucket, amount := range want {
		if !almostEqual(summary.ByProductType[bucket], amount) {
			t.Errorf("bucket %q = %f, want %f", bucket, summary.ByProductType[bucket], amount)
		}
	}
}

func TestClassifyProductType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Gas Cylinder 6Kg - New", "6Kg New"},
		{"Gas Cylinder 6Kg - Refill", "6Kg Refill"},
		{"gas cylinder 6KG refill", "6Kg Refill"},
		{"Gas Cylinder 12Kg - New", "12Kg New"},
		{"Gas Cylinder 12Kg - Refill", "12Kg Refill"},
		{"Burner (Ksh 450)", "Accessories"},
		{"Hose Pipe 1.5M", "Accessories"},
		{"NEW 6kg cylinder", "6Kg New"},
	}
	for _, tt := range tests {
		if got := classifyProductType(tt.name); got != tt.want {
			t.Errorf("classifyProductType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSales_TopClients(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	day := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	// John appears first with 300 total, Mary ties at 300.
	createSaleAt(t, db, f.john, &f.topGas.ID, 100, day)
	createSaleAt(t, db, f.mary, &f.topGas.ID, 300, day)
	createSaleAt(t, db, f.john, &f.topGas.ID, 200, day)

	summary, err := svc.Sales(day, day, 0)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(summary.TopClients) != 2 {
		t.Fatalf("TopClients = %v", summary.TopClients)
	}
	// Tie broken by first appearance in the range.
	if summary.TopClients[0].Name != "John Kariuki" || summary.TopClients[1].Name != "Mary Ochieng" {
		t.Errorf("tie order wrong: %v", summary.TopClients)
	}
}

func TestDailyBreakdown(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	day := time.Date(2025, 8, 10, 9, 30, 0, 0, time.UTC)
	createSaleAt(t, db, f.john, &f.topGas.ID, 3200, day)
	createSaleAt(t, db, f.mary, nil, 450, day.Add(2*time.Hour)) // unattributed -> Mixed Gas
	createSaleAt(t, db, f.mary, &f.topGas.ID, 999, day.AddDate(0, 0, 1))

	chart, err := svc.DailyBreakdown(day)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(chart.Labels) != 2 {
		t.Fatalf("chart = %+v", chart)
	}
	got := map[string]float64{}
	colors := map[string]string{}
	for i, label := range chart.Labels {
		got[label] = chart.Data[i]
		colors[label] = chart.Colors[i]
	}
	if !almostEqual(got["Top Gas"], 3200) || colors["Top Gas"] != "red" {
		t.Errorf("Top Gas = %f/%s", got["Top Gas"], colors["Top Gas"])
	}
	if !almostEqual(got[MixedGasBucket], 450) || colors[MixedGasBucket] != "purple" {
		t.Errorf("Mixed Gas = %f/%s", got[MixedGasBucket], colors[MixedGasBucket])
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	svc := NewReportService(db)

	createSaleAt(t, db, f.john, &f.topGas.ID, 1000, time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC))
	createSaleAt(t, db, f.john, &f.topGas.ID, 500, time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC))
	createSaleAt(t, db, f.john, &f.kGas.ID, 200, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) // next month

	chart, err := svc.MonthlyBreakdown(2025, time.August)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(chart.Labels) != 1 || chart.Labels[0] != "Top Gas" {
		t.Fatalf("chart = %+v", chart)
	}
	if !almostEqual(chart.Data[0], 1500) {
		t.Errorf("Data[0] = %f, want 1500", chart.Data[0])
	}
}

func TestDailyBreakdown_EmptyDay(t *testing.T) {
	db := setupTestDB(t)
	seedReportFixtures(t, db)
	svc := NewReportService(db)

	chart, err := svc.DailyBreakdown(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(chart.Labels) != 0 || len(chart.Data) != 0 || len(chart.Colors) != 0 {
		t.Errorf("expected empty chart, got %+v", chart)
	}
}
