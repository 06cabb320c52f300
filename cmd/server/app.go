package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/handlers"
	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/models"
	"github.com/llakterian/bontez-suppliers/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp wires the services and handlers and configures all routes.
func NewApp(db *gorm.DB) *App {
	app := &App{mux: http.NewServeMux(), db: db}

	saleSvc := services.NewSaleService(db)
	supplierSvc := services.NewSupplierService(db)
	clientSvc := services.NewClientService(db)
	accessorySvc := services.NewAccessoryService(db)
	reportSvc := services.NewReportService(db)

	sh := handlers.NewSupplierHandler(db, supplierSvc)
	ch := handlers.NewClientHandler(db, clientSvc)
	ph := handlers.NewProductHandler(db)
	slh := handlers.NewSaleHandler(db, saleSvc)
	ah := handlers.NewAccessoryHandler(db, accessorySvc)
	rh := handlers.NewReportHandler(reportSvc)

	mux := app.mux

	// Health endpoints
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", app.dashboard)

	// Suppliers
	mux.HandleFunc("GET /api/suppliers", sh.List)
	mux.HandleFunc("POST /api/suppliers", sh.Create)
	mux.HandleFunc("GET /api/suppliers/{id}", sh.View)
	mux.HandleFunc("POST /api/suppliers/{id}", sh.Update)
	mux.HandleFunc("POST /api/suppliers/{id}/delete", sh.Delete)

	// Clients
	mux.HandleFunc("GET /api/clients", ch.List)
	mux.HandleFunc("POST /api/clients", ch.Create)
	mux.HandleFunc("GET /api/clients/{id}", ch.View)
	mux.HandleFunc("POST /api/clients/{id}", ch.Update)
	mux.HandleFunc("POST /api/clients/{id}/delete", ch.Delete)

	// Products
	mux.HandleFunc("GET /api/products", ph.List)
	mux.HandleFunc("POST /api/products", ph.Create)
	mux.HandleFunc("POST /api/products/{id}", ph.Update)
	mux.HandleFunc("POST /api/products/{id}/delete", ph.Delete)

	// Sales
	mux.HandleFunc("GET /api/sales", slh.List)
	mux.HandleFunc("POST /api/sales", slh.Create)
	mux.HandleFunc("GET /api/sales/{id}", slh.View)
	mux.HandleFunc("POST /api/sales/{id}/installments", slh.RecordInstallment)

	// Accessory ledger
	mux.HandleFunc("GET /api/accessories", ah.List)
	mux.HandleFunc("POST /api/accessories", ah.Create)
	mux.HandleFunc("GET /api/accessories/today", ah.Today)
	mux.HandleFunc("GET /api/accessories/report", ah.Report)
	mux.HandleFunc("GET /api/accessories/{id}", ah.View)
	mux.HandleFunc("POST /api/accessories/{id}", ah.Update)

	// Reports
	mux.HandleFunc("GET /api/reports/daily-data", rh.DailyData)
	mux.HandleFunc("GET /api/reports/monthly-data", rh.MonthlyData)
	mux.HandleFunc("GET /api/reports/sales", rh.Sales)

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// dashboard returns the headline totals plus the ten most recent sales.
func (a *App) dashboard(w http.ResponseWriter, r *http.Request) {
	var totalSales, totalPaid float64
	a.db.Model(&models.Sale{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totalSales)
	a.db.Model(&models.Sale{}).Select("COALESCE(SUM(amount_paid), 0)").Scan(&totalPaid)
	var totalClients int64
	a.db.Model(&models.Client{}).Count(&totalClients)

	var recent []models.Sale
	a.db.Preload("Client").Preload("Supplier").
		Order("created_at DESC").Limit(10).Find(&recent)

	httpx.JSON(w, http.StatusOK, map[string]any{
		"stats": map[string]any{
			"total_sales":     totalSales,
			"total_clients":   totalClients,
			"total_paid":      totalPaid,
			"pending_balance": totalSales - totalPaid,
		},
		"recent_sales": recent,
	})
}
