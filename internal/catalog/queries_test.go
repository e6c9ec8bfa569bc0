package catalog

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/johnadams78/capstoneproject/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openCatalogTestDB opens an in-memory SQLite DB with the vehicles table.
func openCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Vehicle{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// seedFixtures inserts a small mixed inventory in a fixed order.
func seedFixtures(t *testing.T, db *gorm.DB) []models.Vehicle {
	t.Helper()
	fixtures := []models.Vehicle{
		{Make: "Lexus", Model: "LS 500", Year: 2024, Price: 76900, Category: "Luxury", BodyType: "Sedan",
			Engine: "3.5L V6 Twin-Turbo", Horsepower: 416, Color: "Liquid Platinum", Mileage: 750,
			Description: "Japanese craftsmanship at its finest."},
		{Make: "BMW", Model: "7 Series", Year: 2024, Price: 95000, Category: "Luxury", BodyType: "Sedan",
			Engine: "3.0L I6 Twin-Turbo", Horsepower: 375, Color: "Alpine White", Mileage: 890,
			Description: "Flagship sedan with Executive Lounge seating."},
		{Make: "Mercedes-Benz", Model: "S-Class", Year: 2024, Price: 114000, Category: "Luxury", BodyType: "Sedan",
			Engine: "4.0L V8 Twin-Turbo", Horsepower: 496, Color: "Obsidian Black", Mileage: 1250,
			Description: "The pinnacle of luxury sedans."},
		{Make: "Lamborghini", Model: "Huracán EVO", Year: 2023, Price: 268000, Category: "Sports", BodyType: "Coupe",
			Engine: "5.2L V10", Horsepower: 631, Color: "Giallo Orion", Mileage: 290,
			Description: "Naturally aspirated perfection."},
		{Make: "Tesla", Model: "Model S Plaid", Year: 2024, Price: 108990, Category: "Electric", BodyType: "Sedan",
			Engine: "Tri-Motor AWD", Horsepower: 1020, Color: "Pearl White", Mileage: 650,
			Description: "The quickest production car ever made."},
		{Make: "Rivian", Model: "R1S", Year: 2022, Price: 84500, Category: "Electric", BodyType: "SUV",
			Engine: "Quad-Motor AWD", Horsepower: 835, Color: "Rivian Blue", Mileage: 1200,
			Description: "Adventure-ready electric SUV."},
		{Make: "BMW", Model: "X7 M60i", Year: 2023, Price: 112000, Category: "Luxury", BodyType: "SUV",
			Engine: "4.4L V8 Twin-Turbo", Horsepower: 523, Color: "Carbon Black", Mileage: 870,
			Description: "Commanding presence, 100% luxury."},
	}
	for i := range fixtures {
		if err := db.Create(&fixtures[i]).Error; err != nil {
			t.Fatalf("seed fixture %d: %v", i, err)
		}
	}
	return fixtures
}

func listPrices(vs []models.Vehicle) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.Price
	}
	return out
}

// ---------------------------------------------------------------------------
// List: predicates
// ---------------------------------------------------------------------------

func TestList_NoCriteriaReturnsFullCatalogPriceDesc(t *testing.T) {
	db := openCatalogTestDB(t)
	fixtures := seedFixtures(t, db)

	vehicles, err := List(db, ParseCriteria(url.Values{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != len(fixtures) {
		t.Fatalf("len = %d, want full catalog %d", len(vehicles), len(fixtures))
	}
	for i := 1; i < len(vehicles); i++ {
		if vehicles[i-1].Price < vehicles[i].Price {
			t.Errorf("default order not price descending at %d: %d < %d",
				i, vehicles[i-1].Price, vehicles[i].Price)
		}
	}
}

func TestList_ExactMatchFilters(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	tests := []struct {
		name  string
		c     Criteria
		want  int
		check func(v models.Vehicle) bool
	}{
		{"make", Criteria{Make: "BMW", MaxPrice: NoMaxPrice}, 2,
			func(v models.Vehicle) bool { return v.Make == "BMW" }},
		{"body type", Criteria{BodyType: "SUV", MaxPrice: NoMaxPrice}, 2,
			func(v models.Vehicle) bool { return v.BodyType == "SUV" }},
		{"category", Criteria{Category: "Electric", MaxPrice: NoMaxPrice}, 2,
			func(v models.Vehicle) bool { return v.Category == "Electric" }},
		{"combined", Criteria{Make: "BMW", BodyType: "Sedan", Category: "Luxury", MaxPrice: NoMaxPrice}, 1,
			func(v models.Vehicle) bool {
				return v.Make == "BMW" && v.BodyType == "Sedan" && v.Category == "Luxury"
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles, err := List(db, tt.c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(vehicles) != tt.want {
				t.Fatalf("len = %d, want %d", len(vehicles), tt.want)
			}
			for _, v := range vehicles {
				if !tt.check(v) {
					t.Errorf("vehicle %s %s violates filter", v.Make, v.Model)
				}
			}
		})
	}
}

func TestList_PriceWindow(t *testing.T) {
	db := openCatalogTestDB(t)
	if err := db.Create(&[]models.Vehicle{
		{Make: "A", Model: "One", Price: 76900},
		{Make: "B", Model: "Two", Price: 95000},
		{Make: "C", Model: "Three", Price: 114000},
	}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	vehicles, err := List(db, Criteria{MinPrice: 80000, MaxPrice: 120000, Sort: "price_desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := listPrices(vehicles), []int{114000, 95000}; !reflect.DeepEqual(got, want) {
		t.Errorf("prices = %v, want %v", got, want)
	}
}

func TestList_PriceBoundsInclusive(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	vehicles, err := List(db, Criteria{MinPrice: 76900, MaxPrice: 76900})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Price != 76900 {
		t.Errorf("inclusive bounds should match the exact price, got %v", listPrices(vehicles))
	}
}

func TestList_MinAboveMaxYieldsEmpty(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	vehicles, err := List(db, Criteria{MinPrice: 200000, MaxPrice: 100000})
	if err != nil {
		t.Fatalf("min > max is not an error: %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("len = %d, want 0 for inverted window", len(vehicles))
	}
}

// ---------------------------------------------------------------------------
// List: search
// ---------------------------------------------------------------------------

func TestList_SearchMatchesAcrossFields(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	tests := []struct {
		name   string
		search string
		wants  []string // expected models, any order
	}{
		{"make", "tesla", []string{"Model S Plaid"}},
		{"model", "huracán", []string{"Huracán EVO"}},
		{"model mixed case", "HURACÁN", []string{"Huracán EVO"}},
		{"engine", "V10", []string{"Huracán EVO"}},
		{"color", "alpine", []string{"7 Series"}},
		{"description", "quickest production", []string{"Model S Plaid"}},
		{"substring across rows", "twin-turbo", []string{"LS 500", "7 Series", "S-Class", "X7 M60i"}},
		{"no match", "zeppelin", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles, err := List(db, Criteria{Search: tt.search, MaxPrice: NoMaxPrice})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make(map[string]bool, len(vehicles))
			for _, v := range vehicles {
				got[v.Model] = true
			}
			if len(vehicles) != len(tt.wants) {
				t.Fatalf("matched %d vehicles %v, want %d", len(vehicles), got, len(tt.wants))
			}
			for _, w := range tt.wants {
				if !got[w] {
					t.Errorf("expected %q in results, got %v", w, got)
				}
			}
		})
	}
}

func TestList_SearchCombinesWithOtherFilters(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	// "twin-turbo" matches four vehicles; the SUV constraint must cut it to one.
	vehicles, err := List(db, Criteria{Search: "twin-turbo", BodyType: "SUV", MaxPrice: NoMaxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Model != "X7 M60i" {
		t.Errorf("search AND body type: got %v, want only X7 M60i", vehicles)
	}
}

func TestList_SearchInjectionProbes(t *testing.T) {
	db := openCatalogTestDB(t)
	fixtures := seedFixtures(t, db)

	probes := []string{
		"'",
		"' OR '1'='1",
		"'; DROP TABLE vehicles; --",
		`" OR ""="`,
		"\\",
	}
	for _, probe := range probes {
		vehicles, err := List(db, Criteria{Search: probe, MaxPrice: NoMaxPrice})
		if err != nil {
			t.Errorf("probe %q: unexpected error: %v", probe, err)
			continue
		}
		if len(vehicles) != 0 {
			t.Errorf("probe %q: matched %d rows, want 0", probe, len(vehicles))
		}
	}

	// The table must survive with all rows intact.
	var count int64
	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		t.Fatalf("count after probes: %v", err)
	}
	if count != int64(len(fixtures)) {
		t.Errorf("rows after probes = %d, want %d", count, len(fixtures))
	}
}

func TestList_SearchWildcardsMatchLiterally(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	// "100%" appears literally in one description; a bare "%" must not
	// suddenly match everything.
	vehicles, err := List(db, Criteria{Search: "100%", MaxPrice: NoMaxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Model != "X7 M60i" {
		t.Errorf("literal %% search: got %v, want only X7 M60i", vehicles)
	}

	vehicles, err = List(db, Criteria{Search: "zzz%zzz", MaxPrice: NoMaxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("wildcard-bearing search matched %d rows, want 0", len(vehicles))
	}
}

// ---------------------------------------------------------------------------
// List: ordering
// ---------------------------------------------------------------------------

func TestList_SortOrders(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	tests := []struct {
		sort string
		less func(a, b models.Vehicle) bool // a may precede b
	}{
		{"price_asc", func(a, b models.Vehicle) bool { return a.Price <= b.Price }},
		{"price_desc", func(a, b models.Vehicle) bool { return a.Price >= b.Price }},
		{"hp_desc", func(a, b models.Vehicle) bool { return a.Horsepower >= b.Horsepower }},
		{"name_asc", func(a, b models.Vehicle) bool { return a.Make <= b.Make }},
		{"year_desc", func(a, b models.Vehicle) bool { return a.Year >= b.Year }},
		{"mileage_asc", func(a, b models.Vehicle) bool { return a.Mileage <= b.Mileage }},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			vehicles, err := List(db, Criteria{Sort: tt.sort, MaxPrice: NoMaxPrice})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := 1; i < len(vehicles); i++ {
				if !tt.less(vehicles[i-1], vehicles[i]) {
					t.Errorf("order violated at %d: %s %s before %s %s",
						i, vehicles[i-1].Make, vehicles[i-1].Model, vehicles[i].Make, vehicles[i].Model)
				}
			}
		})
	}
}

func TestList_TieBreakKeepsInsertionOrder(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	// Both 2024 BMWs share make "BMW"; name_asc must keep them in insertion
	// order (7 Series seeded before X7 M60i).
	vehicles, err := List(db, Criteria{Make: "BMW", Sort: "name_asc", MaxPrice: NoMaxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("len = %d, want 2", len(vehicles))
	}
	if vehicles[0].Model != "7 Series" || vehicles[1].Model != "X7 M60i" {
		t.Errorf("tie order = [%s, %s], want [7 Series, X7 M60i]", vehicles[0].Model, vehicles[1].Model)
	}
}

// ---------------------------------------------------------------------------
// Facets and totals
// ---------------------------------------------------------------------------

func TestListFacets_SortedDistinct(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	f, err := ListFacets(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantMakes := []string{"BMW", "Lamborghini", "Lexus", "Mercedes-Benz", "Rivian", "Tesla"}
	if !reflect.DeepEqual(f.Makes, wantMakes) {
		t.Errorf("Makes = %v, want %v", f.Makes, wantMakes)
	}
	wantTypes := []string{"Coupe", "SUV", "Sedan"}
	if !reflect.DeepEqual(f.BodyTypes, wantTypes) {
		t.Errorf("BodyTypes = %v, want %v", f.BodyTypes, wantTypes)
	}
	wantCats := []string{"Electric", "Luxury", "Sports"}
	if !reflect.DeepEqual(f.Categories, wantCats) {
		t.Errorf("Categories = %v, want %v", f.Categories, wantCats)
	}
}

func TestBrowse_FacetsIgnoreActiveFilters(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	unfiltered, err := Browse(db, ParseCriteria(url.Values{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filtered, err := Browse(db, Criteria{Category: "Electric", MaxPrice: NoMaxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(filtered.Facets, unfiltered.Facets) {
		t.Errorf("facets changed under filtering:\n got %+v\nwant %+v", filtered.Facets, unfiltered.Facets)
	}
	if filtered.Total != unfiltered.Total {
		t.Errorf("Total = %d under filter, want catalog-wide %d", filtered.Total, unfiltered.Total)
	}
	if len(filtered.Vehicles) >= len(unfiltered.Vehicles) {
		t.Errorf("filter did not narrow results: %d vs %d", len(filtered.Vehicles), len(unfiltered.Vehicles))
	}
}

func TestBrowse_EmptyCatalog(t *testing.T) {
	db := openCatalogTestDB(t)

	res, err := Browse(db, ParseCriteria(url.Values{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Vehicles) != 0 || res.Total != 0 {
		t.Errorf("empty catalog: vehicles=%d total=%d, want 0/0", len(res.Vehicles), res.Total)
	}
}

func TestBrowse_StoreUnavailable(t *testing.T) {
	db := openCatalogTestDB(t)
	seedFixtures(t, db)

	// Dropping the table simulates an unreachable/corrupted store; the call
	// must fail outright rather than return partial results.
	if err := db.Migrator().DropTable(&models.Vehicle{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	res, err := Browse(db, ParseCriteria(url.Values{}))
	if err == nil {
		t.Fatal("expected error from unavailable store, got nil")
	}
	if res != nil {
		t.Errorf("expected nil result on store failure, got %+v", res)
	}
	if !strings.Contains(err.Error(), "catalog:") {
		t.Errorf("error = %q, want catalog: prefix", err.Error())
	}
}
