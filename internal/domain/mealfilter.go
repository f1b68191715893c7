package domain

import "strings"

// Opening/closing cutoffs for meal suitability, minutes since midnight.
const (
	breakfastOpenCutoff = 11 * 60 // opens at/after 11:00 -> not a breakfast venue
	lunchOpenCutoff     = 17 * 60 // opens at/after 17:00 -> not a lunch venue
	dinnerCloseCutoff   = 18 * 60 // closes before 18:00 -> not a dinner venue
)

// Structured tags that mark a venue as drink-first rather than food-first.
var barLikeTags = []string{"bar", "pub", "brewery", "nightclub", "izakaya"}

// Text heuristics applied only when a candidate carries no structured
// category signal at all.
var (
	breakfastExcludeTerms = []string{
		"izakaya", "bar", "pub", "ramen", "gyoza",
		"yakiniku", "grill", "hotpot", "shabu",
		"dessert", "parfait", "ice cream",
	}
	breakfastIncludeTerms = []string{
		"breakfast", "brunch", "cafe", "café", "coffee",
		"bakery", "pancake", "toast", "morning",
	}
)

// FilterForMealType narrows a restaurant candidate pool to venues
// appropriate for the given meal slot. The weekday selects which
// operating-hours period the time-based rules read; an empty weekday
// skips those rules entirely.
//
// The default policy is include: sparse data must not eliminate
// otherwise-good candidates, so only a positive disqualifying signal
// excludes. Filtering is idempotent.
func FilterForMealType(candidates []*Location, meal MealType, day Weekday) []*Location {
	out := make([]*Location, 0, len(candidates))
	for _, loc := range candidates {
		if loc == nil {
			continue
		}
		if SuitableForMeal(loc, meal, day) {
			out = append(out, loc)
		}
	}
	return out
}

// SuitableForMeal decides one candidate for one meal slot.
func SuitableForMeal(loc *Location, meal MealType, day Weekday) bool {
	switch meal {
	case MealBreakfast:
		return breakfastSuitable(loc, day)
	case MealLunch:
		return lunchSuitable(loc, day)
	case MealDinner:
		return dinnerSuitable(loc, day)
	default:
		// Snacks and unknown meal types have no disqualifying rules.
		return true
	}
}

func breakfastSuitable(loc *Location, day Weekday) bool {
	// Drink-first venues are never breakfast venues.
	if isBarLike(loc) {
		return false
	}

	// Keyword fallback, only when structured classification is absent.
	if !loc.HasStructuredCategory() {
		text := strings.ToLower(loc.Name + " " + loc.Description)
		if containsAny(text, breakfastExcludeTerms) {
			return false
		}
		if containsAny(text, breakfastIncludeTerms) {
			return true
		}
	}

	// Explicit serving flags outrank everything below.
	if loc.Meals.Breakfast == MealYes || loc.Meals.Brunch == MealYes {
		return true
	}
	if loc.Meals.Breakfast == MealNo && loc.Meals.Brunch == MealNo {
		return false
	}

	// Opening at 11:00 or later is too late for breakfast.
	if open, ok := openMinutes(loc.Hours, day); ok && open >= breakfastOpenCutoff {
		return false
	}

	// Cafés are breakfast venues unless something above said otherwise,
	// and so is everything else with no disqualifying signal.
	return true
}

func lunchSuitable(loc *Location, day Weekday) bool {
	if loc.Meals.Lunch == MealYes {
		return true
	}
	// A dinner-only specialist: explicitly no lunch, yes dinner, and no
	// breakfast signal to suggest daytime service.
	if loc.Meals.Lunch == MealNo && loc.Meals.Dinner == MealYes && loc.Meals.Breakfast != MealYes {
		return false
	}
	if open, ok := openMinutes(loc.Hours, day); ok && open >= lunchOpenCutoff {
		return false
	}
	return true
}

func dinnerSuitable(loc *Location, day Weekday) bool {
	if loc.Meals.Dinner == MealYes {
		return true
	}
	if loc.Meals.Dinner == MealNo && (loc.Meals.Breakfast == MealYes || loc.Meals.Lunch == MealYes) {
		return false
	}
	// closeMinutes already shifts overnight closes past midnight, so a
	// venue closing at 02:00 does not read as "closed before dinner".
	if close, ok := closeMinutes(loc.Hours, day); ok && close < dinnerCloseCutoff {
		return false
	}
	return true
}

func isBarLike(loc *Location) bool {
	if loc.Category == CategoryBar {
		return true
	}
	for _, tag := range loc.Tags {
		tag = strings.ToLower(tag)
		for _, bad := range barLikeTags {
			if tag == bad {
				return true
			}
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
