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

type ClientHandler struct {
	db  *gorm.DB
	svc *services.ClientService
}

func NewClientHandler(db *gorm.DB, svc *services.ClientService) *ClientHandler {
	return &ClientHandler{db: db, svc: svc}
}

// List: GET /api/clients, paginated
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	var total int64
	h.db.Model(&models.Client{}).Count(&total)
	var clients []models.Client
	if err := h.db.Order("name").Limit(limit).Offset(offset).Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"clients": clients,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// Create: POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("phone", req.Phone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	client, err := h.svc.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

// View: GET /api/clients/{id}, client details plus sales history,
// newest first.
func (h *ClientHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "client_not_found", nil)
		return
	}
	var sales []models.Sale
	h.db.Preload("Supplier").Where("client_id = ?", id).Order("created_at DESC").Find(&sales)
	httpx.JSON(w, http.StatusOK, map[string]any{"client": client, "sales": sales})
}

// Update: POST /api/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "client_not_found", nil)
		return
	}
	// Pointer fields so omitted values keep their current state.
	var req struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Phone != nil && *req.Phone != "" && *req.Phone != client.Phone {
		var count int64
		h.db.Model(&models.Client{}).Where("phone = ? AND id <> ?", *req.Phone, id).Count(&count)
		if count > 0 {
			httpx.JSONError(w, http.StatusBadRequest, "phone_number_taken", nil)
			return
		}
		client.Phone = *req.Phone
	}
	if req.Name != nil && *req.Name != "" {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if err := h.db.Save(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_client", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Delete: POST /api/clients/{id}/delete, cascades to the client's sales.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
