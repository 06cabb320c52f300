package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// ClientService owns client creation and deletion.
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

type ClientInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Create inserts a client after checking the phone number is present and
// not already registered.
func (s *ClientService) Create(in ClientInput) (*models.Client, error) {
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" {
		return nil, validationf("client name is required")
	}
	if in.Phone == "" {
		return nil, validationf("client phone is required")
	}
	var count int64
	if err := s.db.Model(&models.Client{}).Where("phone = ?", in.Phone).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationf("phone number %s already exists", in.Phone)
	}
	client := models.Client{Name: in.Name, Phone: in.Phone, Email: in.Email, Address: in.Address}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Delete removes a client and all of their sales (with items and
// installments) as one transaction.
func (s *ClientService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("client %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := deleteSalesWhere(tx, "client_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
}
