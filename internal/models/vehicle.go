package models

import "strconv"

// Vehicle is a single catalog entry in the showroom inventory.
// Rows are created by seeding and never mutated by the service.
type Vehicle struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Make         string `gorm:"size:50;index:idx_vehicles_make_model,unique" json:"make"`
	Model        string `gorm:"size:50;index:idx_vehicles_make_model,unique" json:"model"`
	Year         int    `json:"year"`
	Price        int    `gorm:"index" json:"price"`
	Category     string `gorm:"size:20;index" json:"category"`
	BodyType     string `gorm:"column:type;size:20;index" json:"type"`
	Engine       string `gorm:"size:30" json:"engine"`
	Horsepower   int    `json:"horsepower"`
	Color        string `gorm:"size:20" json:"color"`
	Mileage      int    `gorm:"default:0" json:"mileage"`
	Transmission string `gorm:"size:20;default:Automatic" json:"transmission"`
	FuelType     string `gorm:"size:20;default:Gasoline" json:"fuel_type"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"size:255" json:"image_url"`
}

// DisplayName is the "year make model" label used on cards and in
// inquiry vehicle references.
func (v Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
