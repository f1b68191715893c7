package domain

import "strings"

// TimeSlot buckets a day into coarse parts.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// ParseTimeSlot normalizes a raw slot string; unknown values return "".
func ParseTimeSlot(s string) TimeSlot {
	switch TimeSlot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotMorning:
		return SlotMorning
	case SlotAfternoon:
		return SlotAfternoon
	case SlotEvening:
		return SlotEvening
	default:
		return ""
	}
}

// MealType identifies a meal slot within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ParseMealType normalizes a raw meal string; unknown values return "".
func ParseMealType(s string) MealType {
	switch MealType(strings.ToLower(strings.TrimSpace(s))) {
	case MealBreakfast:
		return MealBreakfast
	case MealLunch:
		return MealLunch
	case MealDinner:
		return MealDinner
	case MealSnack:
		return MealSnack
	default:
		return ""
	}
}

// ActivityKind distinguishes place visits from free-form entries.
type ActivityKind string

const (
	KindPlace ActivityKind = "place"
	KindOther ActivityKind = "other"
)

// Activity is a scheduled unit within a day. Activities are immutable
// once created; edits replace the whole value through a history transition.
type Activity struct {
	Kind        ActivityKind
	ID          string
	Title       string
	Slot        TimeSlot
	DurationMin int

	// Optional references.
	LocationID string
	Meal       MealType // empty when the activity is not a meal
	Coords     *Coordinates
	Note       string
}

// Gap identifies a missing slot in a day's schedule.
type Gap struct {
	DayID    string
	DayIndex int
	Action   GapAction
}

// GapAction is the tagged variant describing what should fill a gap.
// The two concrete variants are AddMeal and AddExperience; matching on
// them is exhaustive, so a new gap kind is a compile-time exercise.
type GapAction interface {
	gapAction()
}

// AddMeal asks for a meal recommendation.
type AddMeal struct {
	Meal MealType
	Slot TimeSlot

	// AfterActivityID, when set, pins the insertion point immediately
	// after that activity, overriding the meal-type default.
	AfterActivityID string
}

func (AddMeal) gapAction() {}

// AddExperience asks for a non-meal recommendation.
type AddExperience struct {
	Slot TimeSlot

	// Category, when non-empty, restricts the candidate pool.
	Category Category
}

func (AddExperience) gapAction() {}
