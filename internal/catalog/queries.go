package catalog

import (
	"fmt"
	"strings"

	"github.com/johnadams78/capstoneproject/internal/models"
	"gorm.io/gorm"
)

// Facets holds the distinct values for each filter dropdown. They always
// reflect the full catalog, never the filtered subset.
type Facets struct {
	Makes      []string `json:"makes"`
	BodyTypes  []string `json:"body_types"`
	Categories []string `json:"categories"`
}

// Result holds everything the inventory page needs for one request.
type Result struct {
	Vehicles []models.Vehicle `json:"vehicles"`
	Facets   Facets           `json:"facets"`
	Total    int64            `json:"total"`
	Criteria Criteria         `json:"-"`
}

// List returns vehicles matching the criteria, ordered per its sort key.
// Every user-supplied value is bound as a placeholder argument; none is
// interpolated into the statement text.
func List(db *gorm.DB, c Criteria) ([]models.Vehicle, error) {
	q := db.Model(&models.Vehicle{})
	if c.MinPrice > 0 {
		q = q.Where("price >= ?", c.MinPrice)
	}
	if c.MaxPrice != NoMaxPrice {
		q = q.Where("price <= ?", c.MaxPrice)
	}
	if c.Make != "" {
		q = q.Where("make = ?", c.Make)
	}
	if c.BodyType != "" {
		q = q.Where("type = ?", c.BodyType)
	}
	if c.Category != "" {
		q = q.Where("category = ?", c.Category)
	}
	if c.Search != "" {
		pattern := "%" + strings.ToLower(likeEscape(c.Search)) + "%"
		cond := "(LOWER(make) LIKE ? ESCAPE '|' OR LOWER(model) LIKE ? ESCAPE '|'" +
			" OR LOWER(description) LIKE ? ESCAPE '|' OR LOWER(engine) LIKE ? ESCAPE '|'" +
			" OR LOWER(color) LIKE ? ESCAPE '|')"
		q = q.Where(cond, pattern, pattern, pattern, pattern, pattern)
	}

	var vehicles []models.Vehicle
	if err := q.Order(c.OrderClause()).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("catalog: list vehicles: %w", err)
	}
	return vehicles, nil
}

// ListFacets returns distinct makes, body types, and categories across the
// entire catalog, each sorted ascending, for the filter dropdowns.
func ListFacets(db *gorm.DB) (Facets, error) {
	var f Facets
	if err := db.Model(&models.Vehicle{}).Distinct("make").Order("make ASC").
		Pluck("make", &f.Makes).Error; err != nil {
		return Facets{}, fmt.Errorf("catalog: list makes: %w", err)
	}
	if err := db.Model(&models.Vehicle{}).Distinct("type").Order("type ASC").
		Pluck("type", &f.BodyTypes).Error; err != nil {
		return Facets{}, fmt.Errorf("catalog: list body types: %w", err)
	}
	if err := db.Model(&models.Vehicle{}).Distinct("category").Order("category ASC").
		Pluck("category", &f.Categories).Error; err != nil {
		return Facets{}, fmt.Errorf("catalog: list categories: %w", err)
	}
	return f, nil
}

// Total returns the full catalog count, independent of any criteria.
func Total(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("catalog: count vehicles: %w", err)
	}
	return count, nil
}

// Browse runs the full inventory query for one request: matching vehicles,
// facet lists, and the catalog total. A store failure aborts the whole
// request; no partial result is returned.
func Browse(db *gorm.DB, c Criteria) (*Result, error) {
	vehicles, err := List(db, c)
	if err != nil {
		return nil, err
	}
	facets, err := ListFacets(db)
	if err != nil {
		return nil, err
	}
	total, err := Total(db)
	if err != nil {
		return nil, err
	}
	return &Result{Vehicles: vehicles, Facets: facets, Total: total, Criteria: c}, nil
}
