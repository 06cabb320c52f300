package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/models"
	"github.com/llakterian/bontez-suppliers/internal/services"
)

type SaleHandler struct {
	db  *gorm.DB
	svc *services.SaleService
}

func NewSaleHandler(db *gorm.DB, svc *services.SaleService) *SaleHandler {
	return &SaleHandler{db: db, svc: svc}
}

// List: GET /api/sales, paginated, newest first, with embedded client
// and supplier.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	var total int64
	h.db.Model(&models.Sale{}).Count(&total)
	var sales []models.Sale
	err := h.db.Preload("Client").Preload("Supplier").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&sales).Error
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_sales", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"sales":  sales,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Create: POST /api/sales
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSaleInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sale, err := h.svc.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

// View: GET /api/sales/{id}, the full sale with items, installment
// schedule, client and supplier.
func (h *SaleHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var sale models.Sale
	err := h.db.Preload("Client").Preload("Supplier").
		Preload("Items.Product").Preload("Installments").
		First(&sale, id).Error
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "sale_not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

// RecordInstallment: POST /api/sales/{id}/installments
func (h *SaleHandler) RecordInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sale, err := h.svc.RecordInstallment(id, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}
