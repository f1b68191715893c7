package domain

import "strings"

// TravelStyle captures the traveler's pacing preference.
type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleBalanced TravelStyle = "balanced"
	StyleIntense  TravelStyle = "intense"
)

// ParseTravelStyle normalizes a raw style string. Unknown values fall
// back to StyleBalanced so scoring never has to error on profile input.
func ParseTravelStyle(s string) TravelStyle {
	switch TravelStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleRelaxed:
		return StyleRelaxed
	case StyleIntense:
		return StyleIntense
	default:
		return StyleBalanced
	}
}

// Budget is the traveler's stated spending cap. The two fields are
// mutually informative but not required to agree; zero means unset.
type Budget struct {
	PerDay int
	Total  int
}

// TravelerProfile is everything the scoring model knows about a traveler.
type TravelerProfile struct {
	// Interests are free-form tags ("history", "food", "nature").
	Interests []string

	Style  TravelStyle
	Budget Budget

	// Dietary restriction tags ("vegetarian", "vegan", ...).
	Dietary []string

	// RecentCategories lists the categories of recently visited
	// locations, most recent last. Used for diversity penalties.
	RecentCategories []Category
}
