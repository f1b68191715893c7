package domain

import "strings"

// Category classifies a point of interest within the fixed taxonomy.
// Anything unrecognized maps to CategoryOther.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryFood       Category = "food"
	CategoryShrine     Category = "shrine"
	CategoryTemple     Category = "temple"
	CategoryMuseum     Category = "museum"
	CategoryLandmark   Category = "landmark"
	CategoryPark       Category = "park"
	CategoryNature     Category = "nature"
	CategoryMarket     Category = "market"
	CategoryBar        Category = "bar"
	CategoryCafe       Category = "cafe"
	CategoryHistoric   Category = "historic"
	CategoryViewpoint  Category = "viewpoint"
	CategoryOther      Category = "other"
)

var knownCategories = map[Category]bool{
	CategoryRestaurant: true,
	CategoryFood:       true,
	CategoryShrine:     true,
	CategoryTemple:     true,
	CategoryMuseum:     true,
	CategoryLandmark:   true,
	CategoryPark:       true,
	CategoryNature:     true,
	CategoryMarket:     true,
	CategoryBar:        true,
	CategoryCafe:       true,
	CategoryHistoric:   true,
	CategoryViewpoint:  true,
	CategoryOther:      true,
}

// ParseCategory normalizes a raw category string.
// Unknown values collapse to CategoryOther; empty stays empty ("no category signal").
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	c := Category(s)
	if knownCategories[c] {
		return c
	}
	return CategoryOther
}

// MealFlag is a tri-state serving signal. Sparse travel data means a flag
// is very often simply unknown, and unknown must never behave like "no".
type MealFlag int

const (
	MealUnknown MealFlag = iota
	MealYes
	MealNo
)

// MealFlagOf converts an optional boolean (as it arrives from catalog
// files or APIs) into the explicit tri-state.
func MealFlagOf(b *bool) MealFlag {
	switch {
	case b == nil:
		return MealUnknown
	case *b:
		return MealYes
	default:
		return MealNo
	}
}

// MealFlags carries the structured serving signals of a venue.
type MealFlags struct {
	Breakfast MealFlag
	Brunch    MealFlag
	Lunch     MealFlag
	Dinner    MealFlag
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// HoursPeriod is one weekday's opening window. Open and Close are local
// "HH:MM" strings. Overnight means Close falls on the following calendar day.
// A weekday appears at most once in a location's schedule.
type HoursPeriod struct {
	Weekday   Weekday
	Open      string
	Close     string
	Overnight bool
}

// Location represents a point of interest.
//
// It is the canonical in-memory record all decision logic operates on;
// catalog files and caches are mapped into this structure. Every field
// beyond ID and Name is optional: missing signals degrade to documented
// neutral defaults rather than excluding the location.
type Location struct {
	// Identity
	ID   string
	Name string
	City string

	// Classification
	Category Category
	Tags     []string

	// Geography
	Coords *Coordinates

	// Hours is the weekly operating schedule.
	// An empty list means "hours unknown" and the location is always
	// treated as open (benefit of the doubt).
	Hours []HoursPeriod

	// PriceTier is 0-4, where 0 means free or unspecified.
	PriceTier int

	// Popularity signals.
	Rating      float64 // 0-5
	ReviewCount int

	// Meals carries the structured serving flags.
	Meals MealFlags

	// VisitMinutes is the typical dwell time; 0 = unknown.
	VisitMinutes int

	Description string
}

// HasStructuredCategory reports whether the location carries any usable
// classification signal (a concrete category or tags). When it does not,
// text heuristics are the only fallback.
func (l *Location) HasStructuredCategory() bool {
	if l.Category != "" && l.Category != CategoryOther {
		return true
	}
	return len(l.Tags) > 0
}
