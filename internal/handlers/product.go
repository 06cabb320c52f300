package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/models"
	"github.com/llakterian/bontez-suppliers/internal/validation"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type productReq struct {
	Name        string  `json:"name"`
	SupplierID  *uint   `json:"supplier_id"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// List: GET /api/products?supplier_id=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.db.Order("name")
	if v := r.URL.Query().Get("supplier_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			q = q.Where("supplier_id = ?", id)
		}
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"products": products})
}

// Create: POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("category", req.Category, v)
	validation.NonNegativeFloat("price", req.Price, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if req.SupplierID != nil {
		var count int64
		h.db.Model(&models.Supplier{}).Where("id = ?", *req.SupplierID).Count(&count)
		if count == 0 {
			httpx.JSONError(w, http.StatusNotFound, "supplier_not_found", nil)
			return
		}
	}
	product := models.Product{
		Name:        req.Name,
		SupplierID:  req.SupplierID,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.db.Create(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_product", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

// productUpdateReq distinguishes omitted fields (nil, left unchanged)
// from explicit zero values.
type productUpdateReq struct {
	Name        *string  `json:"name"`
	SupplierID  *uint    `json:"supplier_id"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// Update: POST /api/products/{id}. Fields absent from the body keep their
// current values. Repricing does not touch recorded sale items, their unit
// prices are snapshots.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "product_not_found", nil)
		return
	}
	var req productUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Price != nil && *req.Price < 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"price": "must_not_be_negative"})
		return
	}
	if req.SupplierID != nil {
		var count int64
		h.db.Model(&models.Supplier{}).Where("id = ?", *req.SupplierID).Count(&count)
		if count == 0 {
			httpx.JSONError(w, http.StatusNotFound, "supplier_not_found", nil)
			return
		}
		product.SupplierID = req.SupplierID
	}
	if req.Name != nil && *req.Name != "" {
		product.Name = *req.Name
	}
	if req.Category != nil && *req.Category != "" {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if err := h.db.Save(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_product", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

// Delete: POST /api/products/{id}/delete, also removes sale items
// referencing the product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "product_not_found", nil)
		return
	}
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_product", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
