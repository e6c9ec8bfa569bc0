package inquiry

import (
	"errors"
	"fmt"

	"github.com/johnadams78/capstoneproject/internal/models"
	"gorm.io/gorm"
)

// ValidTransitions maps each inquiry status to its valid next statuses.
// "closed → new" allows reopening a prematurely closed inquiry.
var ValidTransitions = map[string][]string{
	"new":       {"contacted", "closed"},
	"contacted": {"closed", "new"},
	"closed":    {"new"},
}

func isValidTransition(from, to string) bool {
	for _, next := range ValidTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Mark moves an inquiry to a new follow-up status.
func Mark(db *gorm.DB, id uint, status string) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := db.Where("id = ?", id).First(&inq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inquiry: not found: %d", id)
		}
		return nil, fmt.Errorf("inquiry: load %d: %w", id, err)
	}

	if !isValidTransition(inq.Status, status) {
		return nil, fmt.Errorf("inquiry: invalid transition %s → %s for inquiry %d", inq.Status, status, id)
	}

	if err := db.Model(&inq).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("inquiry: update %d: %w", id, err)
	}
	inq.Status = status
	return &inq, nil
}
