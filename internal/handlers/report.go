package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// DailyData: GET /api/reports/daily-data?date=YYYY-MM-DD
// A missing or malformed date falls back to today.
func (h *ReportHandler) DailyData(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			day = parsed
		}
	}
	chart, err := h.svc.DailyBreakdown(day)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_build_report", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, chart)
}

// MonthlyData: GET /api/reports/monthly-data?year=&month=
// Missing or malformed values fall back to the current month.
func (h *ReportHandler) MonthlyData(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			year = n
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 12 {
			month = time.Month(n)
		}
	}
	chart, err := h.svc.MonthlyBreakdown(year, month)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_build_report", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, chart)
}

// Sales: GET /api/reports/sales?date_from=&date_to=&supplier_id=
// Defaults: date_to = today, date_from = 30 days earlier.
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	to := time.Now().UTC()
	if v := r.URL.Query().Get("date_to"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			to = parsed
		}
	}
	from := to.AddDate(0, 0, -30)
	if v := r.URL.Query().Get("date_from"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			from = parsed
		}
	}
	var supplierID uint
	if v := r.URL.Query().Get("supplier_id"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			supplierID = uint(n)
		}
	}
	summary, err := h.svc.Sales(from, to, supplierID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_build_report", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
