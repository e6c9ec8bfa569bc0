// Package inquiry handles customer contact requests: intake validation,
// persistence, and the follow-up status workflow.
package inquiry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnadams78/capstoneproject/internal/models"
	"gorm.io/gorm"
)

// GeneralRef is stored when a submission names no particular vehicle.
const GeneralRef = "General"

// Submission holds the raw intake payload from the contact form.
// VehicleRef is advisory text (a "year make model" label or empty for a
// general inquiry); it is not checked against the catalog.
type Submission struct {
	VehicleRef string
	Name       string
	Email      string
	Phone      string
	Message    string
}

// ValidationError reports a missing required intake field. It is returned
// before any store interaction, so a failed submission has no side effects.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("inquiry: %s is required", e.Field)
}

// IsValidation reports whether err is an intake validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Submit validates the payload and persists exactly one inquiry row with
// status "new" and a server-assigned creation timestamp. Resubmitting
// creates a new row; there is no idempotency key.
func Submit(db *gorm.DB, s Submission) (*models.Inquiry, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	email := strings.TrimSpace(s.Email)
	if email == "" {
		return nil, &ValidationError{Field: "email"}
	}

	ref := strings.TrimSpace(s.VehicleRef)
	if ref == "" {
		ref = GeneralRef
	}

	inq := models.Inquiry{
		VehicleRef:   ref,
		CustomerName: name,
		Email:        email,
		Phone:        strings.TrimSpace(s.Phone),
		Message:      strings.TrimSpace(s.Message),
		Status:       "new",
	}
	if err := db.Create(&inq).Error; err != nil {
		return nil, fmt.Errorf("inquiry: insert: %w", err)
	}
	return &inq, nil
}

// ListFilters holds optional filters for listing inquiries.
type ListFilters struct {
	Status     string
	VehicleRef string
}

// List returns inquiries matching the filters, newest first.
func List(db *gorm.DB, filters ListFilters) ([]models.Inquiry, error) {
	q := db.Model(&models.Inquiry{})
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.VehicleRef != "" {
		q = q.Where("vehicle_ref = ?", filters.VehicleRef)
	}

	var inquiries []models.Inquiry
	if err := q.Order("created_at DESC, id DESC").Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("inquiry: list: %w", err)
	}
	return inquiries, nil
}

// CountNewSince returns the number of "new" inquiries created after the
// given cutoff, for digest reporting.
func CountNewSince(db *gorm.DB, cutoff time.Time) (int64, error) {
	var count int64
	if err := db.Model(&models.Inquiry{}).
		Where("status = ? AND created_at > ?", "new", cutoff).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("inquiry: count new: %w", err)
	}
	return count, nil
}
