package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// MixedGasBucket is the synthetic supplier label used in reports for
// sales that have no attributed supplier.
const MixedGasBucket = "Mixed Gas"

const (
	mixedGasColor = "purple"
	fallbackColor = "gray"
)

// Product-type buckets used by the range report. Classification is a
// substring heuristic over free-text product names, not a stored category
// field; see classifyProductType.
var productTypeBuckets = []string{
	"6Kg New", "6Kg Refill", "12Kg New", "12Kg Refill", "Accessories",
}

// ReportService answers read-only reporting queries. Malformed or missing
// filters fall back to defaults in the handlers; empty result sets yield
// zero-valued aggregates here, never errors.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ChartData is the parallel label/value/color shape consumed by the
// dashboard charts.
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// DailyBreakdown sums sale totals for one calendar day grouped by supplier
// name. Unattributed sales land in the Mixed Gas bucket.
func (s *ReportService) DailyBreakdown(day time.Time) (*ChartData, error) {
	start := DayOf(day)
	return s.supplierBreakdown(start, start.AddDate(0, 0, 1))
}

// MonthlyBreakdown is DailyBreakdown over a calendar month.
func (s *ReportService) MonthlyBreakdown(year int, month time.Month) (*ChartData, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return s.supplierBreakdown(start, start.AddDate(0, 1, 0))
}

func (s *ReportService) supplierBreakdown(start, end time.Time) (*ChartData, error) {
	var sales []models.Sale
	err := s.db.Preload("Supplier").
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	var labels []string
	for _, sale := range sales {
		name := MixedGasBucket
		if sale.Supplier != nil {
			name = sale.Supplier.Name
		}
		if _, seen := totals[name]; !seen {
			labels = append(labels, name)
		}
		totals[name] += sale.TotalAmount
	}

	var suppliers []models.Supplier
	if err := s.db.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	colorMap := map[string]string{MixedGasBucket: mixedGasColor}
	for _, sup := range suppliers {
		colorMap[sup.Name] = sup.Color
	}

	chart := &ChartData{Labels: []string{}, Data: []float64{}, Colors: []string{}}
	for _, label := range labels {
		color := colorMap[label]
		if color == "" {
			color = fallbackColor
		}
		chart.Labels = append(chart.Labels, label)
		chart.Data = append(chart.Data, totals[label])
		chart.Colors = append(chart.Colors, color)
	}
	return chart, nil
}

// DailyPoint is one entry of the range report's time series.
type DailyPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// ClientTotal ranks one client by revenue.
type ClientTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// SalesSummary is the fixed-shape aggregate produced by the range report.
type SalesSummary struct {
	TotalSales      int                `json:"total_sales"`
	TotalRevenue    float64            `json:"total_revenue"`
	AverageSale     float64            `json:"average_sale"`
	YoYGrowth       float64            `json:"yoy_growth"`
	BySupplier      map[string]float64 `json:"sales_by_supplier"`
	ByPaymentMethod map[string]float64 `json:"sales_by_payment_method"`
	ByProductType   map[string]float64 `json:"sales_by_product_type"`
	DailySales      []DailyPoint       `json:"daily_sales"`
	TopClients      []ClientTotal      `json:"top_clients"`
}

// Sales builds the comprehensive report over [from, to] (whole days,
// inclusive), optionally filtered to one supplier. supplierID zero means
// no filter.
func (s *ReportService) Sales(from, to time.Time, supplierID uint) (*SalesSummary, error) {
	from, to = DayOf(from), DayOf(to)

	sales, err := s.salesInRange(from, to, supplierID)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		BySupplier:      map[string]float64{},
		ByPaymentMethod: map[string]float64{},
		ByProductType:   map[string]float64{},
		DailySales:      []DailyPoint{},
		TopClients:      []ClientTotal{},
	}
	for _, bucket := range productTypeBuckets {
		summary.ByProductType[bucket] = 0
	}

	summary.TotalSales = len(sales)
	for _, sale := range sales {
		summary.TotalRevenue += sale.TotalAmount
	}
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalSales)
	}

	summary.YoYGrowth = s.yoyGrowth(from, to, summary.TotalRevenue)

	// Per-supplier totals cover attributed sales only; the range report has
	// no Mixed Gas bucket.
	for _, sale := range sales {
		if sale.Supplier != nil {
			summary.BySupplier[sale.Supplier.Name] += sale.TotalAmount
		}
		summary.ByPaymentMethod[sale.PaymentMethod] += sale.TotalAmount
	}

	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.Product == nil {
				continue
			}
			summary.ByProductType[classifyProductType(item.Product.Name)] += item.Subtotal
		}
	}

	daily := map[string]*DailyPoint{}
	for _, sale := range sales {
		key := sale.SaleDate.UTC().Format("2006-01-02")
		point, ok := daily[key]
		if !ok {
			point = &DailyPoint{Date: key}
			daily[key] = point
		}
		point.Amount += sale.TotalAmount
		point.Count++
	}
	for _, point := range daily {
		summary.DailySales = append(summary.DailySales, *point)
	}
	sort.Slice(summary.DailySales, func(i, j int) bool {
		return summary.DailySales[i].Date < summary.DailySales[j].Date
	})

	summary.TopClients = topClients(sales, 10)
	return summary, nil
}

func (s *ReportService) salesInRange(from, to time.Time, supplierID uint) ([]models.Sale, error) {
	q := s.db.Preload("Client").Preload("Supplier").Preload("Items.Product").
		Where("sale_date >= ? AND sale_date < ?", from, to.AddDate(0, 0, 1))
	if supplierID != 0 {
		q = q.Where("supplier_id = ?", supplierID)
	}
	var sales []models.Sale
	if err := q.Order("id").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// yoyGrowth compares revenue against the same calendar range one year
// earlier. The prior-year revenue always covers all suppliers, even when
// the current range is supplier-filtered. Growth is 0 when the prior year
// had no revenue or when the shifted range is invalid (leap-day edges).
func (s *ReportService) yoyGrowth(from, to time.Time, revenue float64) float64 {
	lastFrom, okFrom := shiftYearBack(from)
	lastTo, okTo := shiftYearBack(to)
	if !okFrom || !okTo {
		return 0
	}
	priorSales, err := s.salesInRange(lastFrom, lastTo, 0)
	if err != nil {
		return 0
	}
	var prior float64
	for _, sale := range priorSales {
		prior += sale.TotalAmount
	}
	if prior <= 0 {
		return 0
	}
	return (revenue - prior) / prior * 100
}

// shiftYearBack moves d one calendar year into the past. The second return
// is false when the shifted date does not exist (Feb 29 on a non-leap
// year), matching the fall-back-to-zero growth semantics.
func shiftYearBack(d time.Time) (time.Time, bool) {
	y, m, day := d.Date()
	shifted := time.Date(y-1, m, day, 0, 0, 0, 0, time.UTC)
	if shifted.Month() != m || shifted.Day() != day {
		return time.Time{}, false
	}
	return shifted, true
}

// classifyProductType maps a free-text product name onto the fixed
// taxonomy by case-insensitive substring matching. Fragile by nature: it
// relies on the "... 6Kg - New/Refill" naming convention rather than the
// stored category field.
func classifyProductType(name string) string {
	lower := strings.ToLower(name)
	isNew := strings.Contains(lower, "new")
	switch {
	case strings.Contains(lower, "6kg") && isNew:
		return "6Kg New"
	case strings.Contains(lower, "6kg"):
		return "6Kg Refill"
	case strings.Contains(lower, "12kg") && isNew:
		return "12Kg New"
	case strings.Contains(lower, "12kg"):
		return "12Kg Refill"
	default:
		return "Accessories"
	}
}

// topClients ranks clients by summed revenue, descending, ties broken by
// first appearance in the range.
func topClients(sales []models.Sale, limit int) []ClientTotal {
	totals := map[string]float64{}
	var order []string
	for _, sale := range sales {
		if sale.Client == nil {
			continue
		}
		name := sale.Client.Name
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += sale.TotalAmount
	}
	ranked := make([]ClientTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, ClientTotal{Name: name, Total: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
