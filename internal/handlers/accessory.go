package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/httpx"
	"github.com/llakterian/bontez-suppliers/internal/models"
	"github.com/llakterian/bontez-suppliers/internal/services"
)

type AccessoryHandler struct {
	db  *gorm.DB
	svc *services.AccessoryService
}

func NewAccessoryHandler(db *gorm.DB, svc *services.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{db: db, svc: svc}
}

// List: GET /api/accessories, paginated ledger rows, newest day first.
func (h *AccessoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	var total int64
	h.db.Model(&models.AccessorySale{}).Count(&total)
	var rows []models.AccessorySale
	if err := h.db.Order("sale_date DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_accessory_sales", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"accessory_sales": rows,
		"total":           total,
		"limit":           limit,
		"offset":          offset,
	})
}

// Create: POST /api/accessories. An optional "date" (YYYY-MM-DD) defaults
// to today. A duplicate day is rejected with a pointer to the existing
// row so clients can switch to an update.
func (h *AccessoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
		services.AccessoryInput
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	day := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err == nil {
			day = parsed
		}
	}
	row, err := h.svc.Create(day, req.AccessoryInput)
	if err != nil {
		if services.IsValidation(err) {
			details := map[string]any{}
			if existing, ferr := h.svc.ForDate(day); ferr == nil {
				details["existing_id"] = existing.ID
			}
			httpx.JSONError(w, http.StatusConflict, err.Error(), details)
			return
		}
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, row)
}

// Today: GET /api/accessories/today, this day's ledger row, if any.
func (h *AccessoryHandler) Today(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.ForDate(time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "no_entry_for_today", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, row)
}

// View: GET /api/accessories/{id}
func (h *AccessoryHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var row models.AccessorySale
	if err := h.db.First(&row, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "accessory_sale_not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, row)
}

// Update: POST /api/accessories/{id}
func (h *AccessoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var req services.AccessoryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	row, err := h.svc.Update(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, row)
}

// Report: GET /api/accessories/report?period=day|week|month
func (h *AccessoryHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.URL.Query().Get("period"), time.Now().UTC())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_build_report", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}
