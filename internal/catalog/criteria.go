// Package catalog builds inventory queries from untrusted browse parameters.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// NoMaxPrice marks an unbounded upper price limit.
const NoMaxPrice = -1

// DefaultSort is applied when the sort parameter is absent or unrecognized.
const DefaultSort = "price_desc"

// Criteria is the validated, request-scoped set of constraints for a
// catalog query. The zero value of a string field means "no constraint".
type Criteria struct {
	Make     string
	BodyType string
	Category string
	Search   string
	MinPrice int
	MaxPrice int // NoMaxPrice when unbounded
	Sort     string
}

// sortClauses whitelists every ORDER BY the catalog supports. User input
// selects a key here and never reaches the clause text itself. The secondary
// id ASC keeps ties in insertion order.
var sortClauses = map[string]string{
	"price_asc":   "price ASC, id ASC",
	"price_desc":  "price DESC, id ASC",
	"hp_desc":     "horsepower DESC, id ASC",
	"name_asc":    "make ASC, id ASC",
	"year_desc":   "year DESC, id ASC",
	"mileage_asc": "mileage ASC, id ASC",
}

// SortKeys returns the recognized sort keys, for rendering the sort dropdown.
func SortKeys() []string {
	return []string{"price_desc", "price_asc", "hp_desc", "year_desc", "name_asc", "mileage_asc"}
}

// ParseCriteria normalizes raw query parameters into Criteria. Absent or
// empty parameters impose no constraint; malformed price bounds fall back to
// the open bound; an unknown sort key falls back to price descending.
func ParseCriteria(params url.Values) Criteria {
	c := Criteria{
		Make:     strings.TrimSpace(params.Get("make")),
		BodyType: strings.TrimSpace(params.Get("type")),
		Category: strings.TrimSpace(params.Get("category")),
		Search:   strings.TrimSpace(params.Get("search")),
		MinPrice: 0,
		MaxPrice: NoMaxPrice,
		Sort:     DefaultSort,
	}

	if raw := strings.TrimSpace(params.Get("min_price")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			c.MinPrice = n
		}
	}
	if raw := strings.TrimSpace(params.Get("max_price")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			c.MaxPrice = n
		}
	}
	if sort := params.Get("sort"); sortClauses[sort] != "" {
		c.Sort = sort
	}
	return c
}

// OrderClause resolves the criteria's sort key against the whitelist.
func (c Criteria) OrderClause() string {
	if clause, ok := sortClauses[c.Sort]; ok {
		return clause
	}
	return sortClauses[DefaultSort]
}

// likeEscape neutralizes LIKE metacharacters in a search term so the term
// matches literally. '|' is the escape character in the generated predicate.
func likeEscape(term string) string {
	r := strings.NewReplacer("|", "||", "%", "|%", "_", "|_")
	return r.Replace(term)
}
