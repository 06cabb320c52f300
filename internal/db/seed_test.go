package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

func TestSeedIdempotent(t *testing.T) {
	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AutoMigrate(&models.Supplier{}, &models.Product{}, &models.Client{}); err != nil {
		t.Fatal(err)
	}
	if err := Seed(d); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(d); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var suppliers, products, clients int64
	d.Model(&models.Supplier{}).Count(&suppliers)
	d.Model(&models.Product{}).Count(&products)
	d.Model(&models.Client{}).Count(&clients)
	if suppliers != 8 || products != 12 || clients != 5 {
		t.Fatalf("expected 8/12/5 rows got %d/%d/%d", suppliers, products, clients)
	}
	// Baseline catalogue entries exist exactly once.
	var c1, c2 int64
	d.Model(&models.Supplier{}).Where("name = ?", "Top Gas").Count(&c1)
	d.Model(&models.Product{}).Where("name = ?", "Gas Cylinder 6Kg - New").Count(&c2)
	if c1 != 1 || c2 != 1 {
		t.Fatalf("baseline rows duplicated or missing: supplier=%d product=%d", c1, c2)
	}
	// Catalogue cylinders are attributed to the seeded lead supplier.
	var cylinder models.Product
	if err := d.Where("name = ?", "Gas Cylinder 6Kg - New").First(&cylinder).Error; err != nil {
		t.Fatal(err)
	}
	if cylinder.SupplierID == nil {
		t.Fatal("expected cylinder to carry a supplier")
	}
}
