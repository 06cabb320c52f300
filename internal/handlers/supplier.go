package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/models"
	"github.com/llakterian/bontez-suppliers/internal/services"
	"github.com/llakterian/bontez-suppliers/internal/validation"
)

type SupplierHandler struct {
	db  *gorm.DB
	svc *services.SupplierService
}

func NewSupplierHandler(db *gorm.DB, svc *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{db: db, svc: svc}
}

// List: GET /api/suppliers
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	var suppliers []models.Supplier
	if err := h.db.Order("name").Find(&suppliers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_suppliers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"suppliers": suppliers})
}

// Create: POST /api/suppliers
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("color", req.Color, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	supplier, err := h.svc.Create(req.Name, req.Color)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, supplier)
}

// View: GET /api/suppliers/{id}
func (h *SupplierHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var supplier models.Supplier
	if err := h.db.First(&supplier, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "supplier_not_found", nil)
		return
	}
	var products []models.Product
	h.db.Where("supplier_id = ?", id).Order("name").Find(&products)
	httpx.JSON(w, http.StatusOK, map[string]any{"supplier": supplier, "products": products})
}

// Update: POST /api/suppliers/{id}
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var supplier models.Supplier
	if err := h.db.First(&supplier, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "supplier_not_found", nil)
		return
	}
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Name != "" && req.Name != supplier.Name {
		var count int64
		h.db.Model(&models.Supplier{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
		if count > 0 {
			httpx.JSONError(w, http.StatusBadRequest, "supplier_name_taken", nil)
			return
		}
		supplier.Name = req.Name
	}
	if req.Color != "" {
		supplier.Color = req.Color
	}
	if err := h.db.Save(&supplier).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_supplier", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, supplier)
}

// Delete: POST /api/suppliers/{id}/delete, cascades to products and the
// supplier's sales history.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
