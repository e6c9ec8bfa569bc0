package db

import (
	"fmt"

	"github.com/johnadams78/capstoneproject/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Vehicle{},
		&models.Inquiry{},
	}
}

// AutoMigrate creates or updates all showroom tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedVehicles upserts the showroom catalog. Keyed on make+model, so running
// it repeatedly refreshes listings without duplicating rows.
func SeedVehicles(db *gorm.DB) (int, error) {
	for _, v := range Catalog() {
		result := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "make"}, {Name: "model"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"year", "price", "category", "type", "engine", "horsepower",
				"color", "mileage", "transmission", "fuel_type", "description", "image_url",
			}),
		}).Create(&v)
		if result.Error != nil {
			return 0, fmt.Errorf("db: seed vehicle %s %s: %w", v.Make, v.Model, result.Error)
		}
	}
	return len(Catalog()), nil
}
