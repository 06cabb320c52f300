package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// SupplierService owns supplier creation and the destructive cascade on
// deletion.
type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// Create inserts a supplier after checking the name is present and unique.
func (s *SupplierService) Create(name, color string) (*models.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("supplier name is required")
	}
	var count int64
	if err := s.db.Model(&models.Supplier{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationf("supplier %q already exists", name)
	}
	supplier := models.Supplier{Name: name, Color: color}
	if err := s.db.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Delete removes a supplier together with its products and its entire
// sales history, as one transaction. The cascade is deliberately
// aggressive: sales attributed to the supplier are erased, not detached.
func (s *SupplierService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("supplier %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := deleteSalesWhere(tx, "supplier_id = ?", id); err != nil {
			return err
		}
		if err := tx.Where("supplier_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&supplier).Error
	})
}

// deleteSalesWhere removes the sales matching the condition along with
// their items and installments.
func deleteSalesWhere(tx *gorm.DB, query string, args ...any) error {
	var saleIDs []uint
	if err := tx.Model(&models.Sale{}).Where(query, args...).Pluck("id", &saleIDs).Error; err != nil {
		return err
	}
	if len(saleIDs) == 0 {
		return nil
	}
	if err := tx.Where("sale_id IN ?", saleIDs).Delete(&models.SaleItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("sale_id IN ?", saleIDs).Delete(&models.Installment{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", saleIDs).Delete(&models.Sale{}).Error
}
