package catalog

import (
	"testing"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

func boolPtr(v bool) *bool { return &v }

func TestMapLocations(t *testing.T) {
	mapper := NewMapper()

	file := File{
		Cities: map[string][]LocationProps{
			"Kyoto": {
				{
					ID:              "fushimi-inari",
					Name:            "Fushimi Inari Taisha",
					Category:        "shrine",
					Rating:          4.7,
					Reviews:         52000,
					VisitMin:        120,
					ServesBreakfast: boolPtr(false),
					Hours: []HoursProps{
						{Day: "monday", Open: "06:00", Close: "17:30"},
					},
				},
				{
					Name:     "Sunrise Café",
					Category: "cafe",
				},
				{
					// No name: skipped.
					Category: "park",
				},
			},
		},
	}

	catalog, err := mapper.MapLocations(file)
	if err != nil {
		t.Fatalf("MapLocations() error = %v", err)
	}

	locs := catalog["kyoto"]
	if len(locs) != 2 {
		t.Fatalf("mapped %d locations, want 2 (nameless entry skipped)", len(locs))
	}

	shrine := locs[0]
	if shrine.Category != domain.CategoryShrine {
		t.Errorf("category = %q, want shrine", shrine.Category)
	}
	if shrine.City != "kyoto" {
		t.Errorf("city = %q, want kyoto (lowercased)", shrine.City)
	}
	if shrine.Meals.Breakfast != domain.MealNo {
		t.Error("serves_breakfast: false must map to an explicit no")
	}
	if shrine.Meals.Dinner != domain.MealUnknown {
		t.Error("absent serves_dinner must map to unknown, not no")
	}
	if len(shrine.Hours) != 1 || shrine.Hours[0].Weekday != domain.Monday {
		t.Errorf("hours = %v, want one monday period", shrine.Hours)
	}

	cafe := locs[1]
	if cafe.ID != "sunrise-caf" {
		t.Errorf("derived id = %q, want sunrise-caf (slug of ascii letters)", cafe.ID)
	}
}

func TestMapLocationsUnknownCategory(t *testing.T) {
	mapper := NewMapper()
	file := File{Cities: map[string][]LocationProps{
		"osaka": {{Name: "Weird Spot", Category: "spaceship"}},
	}}

	catalog, err := mapper.MapLocations(file)
	if err != nil {
		t.Fatalf("MapLocations() error = %v", err)
	}
	if got := catalog["osaka"][0].Category; got != domain.CategoryOther {
		t.Errorf("unknown category mapped to %q, want other", got)
	}
}

func TestMapLocationsDuplicateWeekday(t *testing.T) {
	mapper := NewMapper()
	file := File{Cities: map[string][]LocationProps{
		"osaka": {{
			Name: "Twice Open",
			Hours: []HoursProps{
				{Day: "monday", Open: "09:00", Close: "12:00"},
				{Day: "monday", Open: "14:00", Close: "18:00"},
				{Day: "someday", Open: "09:00", Close: "12:00"},
			},
		}},
	}}

	catalog, err := mapper.MapLocations(file)
	if err != nil {
		t.Fatalf("MapLocations() error = %v", err)
	}
	hours := catalog["osaka"][0].Hours
	if len(hours) != 1 {
		t.Fatalf("kept %d periods, want 1 (one per weekday, bogus day dropped)", len(hours))
	}
	if hours[0].Open != "09:00" || hours[0].Close != "12:00" {
		t.Error("first period for a weekday must win")
	}
}

func TestMapLocationsEmpty(t *testing.T) {
	mapper := NewMapper()
	if _, err := mapper.MapLocations(File{}); err == nil {
		t.Error("MapLocations() should fail on an empty catalog")
	}
}

func TestMapLocationsClampsPriceTier(t *testing.T) {
	mapper := NewMapper()
	file := File{Cities: map[string][]LocationProps{
		"osaka": {{Name: "Pricey", PriceTier: 9}},
	}}

	catalog, err := mapper.MapLocations(file)
	if err != nil {
		t.Fatalf("MapLocations() error = %v", err)
	}
	if got := catalog["osaka"][0].PriceTier; got != 4 {
		t.Errorf("price tier = %d, want clamped to 4", got)
	}
}
