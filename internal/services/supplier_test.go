package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

func TestSupplierCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)

	sup, err := svc.Create("  Pro Gas  ", "green")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sup.Name != "Pro Gas" {
		t.Errorf("Name = %q, want trimmed", sup.Name)
	}
	if sup.Color != "green" {
		t.Errorf("Color = %q", sup.Color)
	}

	if _, err := svc.Create("Pro Gas", "blue"); !IsValidation(err) {
		t.Errorf("duplicate name: err = %v, want validation error", err)
	}
	if _, err := svc.Create("   ", "red"); !IsValidation(err) {
		t.Errorf("blank name: err = %v, want validation error", err)
	}
}

func TestSupplierDelete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	saleSvc := NewSaleService(db)
	svc := NewSupplierService(db)

	sale, err := saleSvc.Create(CreateSaleInput{
		ClientID:      f.john.ID,
		SupplierID:    &f.topGas.ID,
		PaymentMethod: models.PaymentInstallment,
		Items:         []SaleItemInput{{ProductID: f.sixNew.ID, Quantity: 1}},
		SaleDate:      time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	// Another supplier's sale must survive the cascade.
	other := createSaleAt(t, db, f.mary, &f.kGas.ID, 5500, time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC))

	if err := svc.Delete(f.topGas.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := db.First(&models.Supplier{}, f.topGas.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("supplier still present: %v", err)
	}
	var products, sales, items, installments int64
	db.Model(&models.Product{}).Where("supplier_id = ?", f.topGas.ID).Count(&products)
	db.Model(&models.Sale{}).Where("id = ?", sale.ID).Count(&sales)
	db.Model(&models.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&items)
	db.Model(&models.Installment{}).Where("sale_id = ?", sale.ID).Count(&installments)
	if products != 0 || sales != 0 || items != 0 || installments != 0 {
		t.Errorf("cascade left rows: products=%d sales=%d items=%d installments=%d",
			products, sales, items, installments)
	}

	var survivors int64
	db.Model(&models.Sale{}).Where("id = ?", other.ID).Count(&survivors)
	if survivors != 1 {
		t.Errorf("unrelated sale deleted")
	}
}

func TestSupplierDelete_Unknown(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(db)

	if err := svc.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClientCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	client, err := svc.Create(ClientInput{Name: "Peter Mwangi", Phone: " 0722000111 ", Email: "peter@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.Phone != "0722000111" {
		t.Errorf("Phone = %q, want trimmed", client.Phone)
	}

	if _, err := svc.Create(ClientInput{Name: "Other", Phone: "0722000111"}); !IsValidation(err) {
		t.Errorf("duplicate phone: err = %v, want validation error", err)
	}
	if _, err := svc.Create(ClientInput{Phone: "0722000222"}); !IsValidation(err) {
		t.Errorf("missing name: err = %v, want validation error", err)
	}
	if _, err := svc.Create(ClientInput{Name: "No Phone"}); !IsValidation(err) {
		t.Errorf("missing phone: err = %v, want validation error", err)
	}
}

func TestClientDelete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedReportFixtures(t, db)
	saleSvc := NewSaleService(db)
	svc := NewClientService(db)

	sale, err := saleSvc.Create(CreateSaleInput{
		ClientID:      f.john.ID,
		PaymentMethod: models.PaymentInstallment,
		Items:         []SaleItemInput{{ProductID: f.sixNew.ID, Quantity: 1}},
		SaleDate:      time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	other := createSaleAt(t, db, f.mary, &f.topGas.ID, 1200, time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC))

	if err := svc.Delete(f.john.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var sales, items, installments, survivors int64
	db.Model(&models.Sale{}).Where("id = ?", sale.ID).Count(&sales)
	db.Model(&models.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&items)
	db.Model(&models.Installment{}).Where("sale_id = ?", sale.ID).Count(&installments)
	db.Model(&models.Sale{}).Where("id = ?", other.ID).Count(&survivors)
	if sales != 0 || items != 0 || installments != 0 {
		t.Errorf("cascade left rows: sales=%d items=%d installments=%d", sales, items, installments)
	}
	if survivors != 1 {
		t.Errorf("unrelated sale deleted")
	}
	if err := db.First(&models.Client{}, f.john.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("client still present: %v", err)
	}
}
