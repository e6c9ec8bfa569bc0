package models

import "time"

// Inquiry is a persisted customer contact request, optionally tied to a
// vehicle. VehicleRef is advisory text ("General" or a "year make model"
// label), not a foreign key into vehicles.
type Inquiry struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleRef   string    `gorm:"size:100" json:"vehicle_ref"`
	CustomerName string    `gorm:"size:100;not null" json:"customer_name"`
	Email        string    `gorm:"size:100;not null" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"size:20;default:new;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
