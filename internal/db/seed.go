package db

import (
	"gorm.io/gorm"

	"github.com/llakterian/bontez-suppliers/internal/models"
)

// Seed loads the demo dataset: the eight gas brands carried by the shop,
// the standard product catalogue and a handful of walk-in clients. Each
// record is skipped when it already exists, so seeding is idempotent.
func Seed(db *gorm.DB) error {
	suppliers := []models.Supplier{
		{Name: "Top Gas", Color: "red"},
		{Name: "K-Gas", Color: "black"},
		{Name: "Total Gas", Color: "orange"},
		{Name: "Rubis Gas", Color: "green"},
		{Name: "OiLibya Gas", Color: "brown"},
		{Name: "Men Gas", Color: "maroon"},
		{Name: "Hashi Gas", Color: "yellow"},
		{Name: "Hass Gas", Color: "blue"},
	}
	for i := range suppliers {
		var existing models.Supplier
		err := db.Where("name = ?", suppliers[i].Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&suppliers[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			suppliers[i] = existing
		}
	}

	topGas := suppliers[0].ID
	products := []models.Product{
		{Name: "Gas Cylinder 6Kg - New", SupplierID: &topGas, Category: "cylinder_6kg", Price: 3200, Description: "New 6Kg gas cylinder with gas"},
		{Name: "Gas Cylinder 13Kg - New", SupplierID: &topGas, Category: "cylinder_13kg", Price: 5500, Description: "New 13Kg gas cylinder with gas"},
		{Name: "Gas Cylinder 6Kg - Refill", SupplierID: &topGas, Category: "cylinder_6kg_refill", Price: 1200, Description: "6Kg gas cylinder refill/swap"},
		{Name: "Gas Cylinder 13Kg - Refill", SupplierID: &topGas, Category: "cylinder_13kg_refill", Price: 2600, Description: "13Kg gas cylinder refill/swap"},
		{Name: "Grill", Category: "accessory_grill", Price: 350, Description: "Gas grill"},
		{Name: "Burner (Ksh 300)", Category: "accessory_burner", Price: 300, Description: "Gas burner - Standard"},
		{Name: "Burner (Ksh 350)", Category: "accessory_burner", Price: 350, Description: "Gas burner - Medium"},
		{Name: "Burner (Ksh 450)", Category: "accessory_burner", Price: 450, Description: "Gas burner - Large"},
		{Name: "Burner (Ksh 600)", Category: "accessory_burner", Price: 600, Description: "Gas burner - Premium"},
		{Name: "Regulator 6Kg", Category: "accessory_regulator", Price: 500, Description: "Gas regulator for 6Kg cylinder"},
		{Name: "Regulator 13Kg", Category: "accessory_regulator", Price: 700, Description: "Gas regulator for 13Kg cylinder"},
		{Name: "Hose Pipe 1.5M", Category: "accessory_pipe", Price: 300, Description: "Gas hose pipe 1.5 meters"},
	}
	for _, p := range products {
		var existing models.Product
		err := db.Where("name = ?", p.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	clients := []models.Client{
		{Name: "John Kariuki", Phone: "0712345678", Email: "john@example.com", Address: "Nairobi, Westlands"},
		{Name: "Mary Ochieng", Phone: "0701234567", Email: "mary@example.com", Address: "Mombasa, Tudor"},
		{Name: "Peter Kamau", Phone: "0722233445", Email: "peter@example.com", Address: "Kisumu, Nyalenda"},
		{Name: "Alice Wanjiru", Phone: "0798765432", Email: "alice@example.com", Address: "Nakuru, Menengai"},
		{Name: "Joseph Kipchoge", Phone: "0756789012", Email: "joseph@example.com", Address: "Eldoret, Kapsabet"},
	}
	for _, c := range clients {
		var existing models.Client
		err := db.Where("phone = ?", c.Phone).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
