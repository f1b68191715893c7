package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidGap is returned when a gap carries no recognizable action.
var ErrInvalidGap = errors.New("invalid gap action")

// NotFoundReason explains why no candidate survived selection, so the
// caller can produce an accurate user-facing message.
type NotFoundReason string

const (
	// ReasonEmptyPool means the provider had no data for this city.
	ReasonEmptyPool NotFoundReason = "empty_pool"
	// ReasonAllUsed means every candidate is already on the itinerary.
	ReasonAllUsed NotFoundReason = "all_candidates_used"
	// ReasonNoneSuitable means suitability filtering removed everything.
	ReasonNoneSuitable NotFoundReason = "none_suitable"
)

// NoCandidateError is the typed NotFound failure of Recommend.
type NoCandidateError struct {
	Reason NotFoundReason
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("no candidate found: %s", e.Reason)
}

// Recommendation is the outcome of filling one gap.
type Recommendation struct {
	Location *Location
	Activity Activity
	InsertAt int
}

// Default activity durations in minutes.
var mealDurations = map[MealType]int{
	MealBreakfast: 45,
	MealLunch:     60,
	MealDinner:    90,
	MealSnack:     30,
}

const defaultExperienceMinutes = 90

var defaultMealSlots = map[MealType]TimeSlot{
	MealBreakfast: SlotMorning,
	MealLunch:     SlotAfternoon,
	MealDinner:    SlotEvening,
	MealSnack:     SlotAfternoon,
}

// Recommend picks the single best candidate for a gap and computes where
// in the day's sequence to insert the synthesized activity.
//
// Already-used locations are removed from the pool unconditionally. The
// weekday (resolved by the caller from trip start date and day offset)
// drives the meal filter's open-hours rules; pass "" when it could not be
// resolved and those rules are skipped.
func Recommend(gap Gap, day []Activity, pool []*Location, profile *TravelerProfile, used map[string]bool, weekday Weekday) (*Recommendation, error) {
	if gap.Action == nil {
		return nil, ErrInvalidGap
	}
	if len(pool) == 0 {
		return nil, &NoCandidateError{Reason: ReasonEmptyPool}
	}

	remaining := make([]*Location, 0, len(pool))
	for _, loc := range pool {
		if loc == nil || used[loc.ID] {
			continue
		}
		remaining = append(remaining, loc)
	}
	if len(remaining) == 0 {
		return nil, &NoCandidateError{Reason: ReasonAllUsed}
	}

	ctx := ScoreContext{}
	if profile != nil {
		ctx.RecentCategories = profile.RecentCategories
	}

	switch act := gap.Action.(type) {
	case AddMeal:
		return recommendMeal(act, day, remaining, profile, ctx, weekday)
	case AddExperience:
		return recommendExperience(act, day, remaining, profile, ctx)
	default:
		return nil, ErrInvalidGap
	}
}

func recommendMeal(act AddMeal, day []Activity, pool []*Location, profile *TravelerProfile, ctx ScoreContext, weekday Weekday) (*Recommendation, error) {
	candidates := FilterForMealType(pool, act.Meal, weekday)
	if profile != nil {
		candidates = filterDietary(candidates, profile.Dietary)
	}
	if len(candidates) == 0 {
		return nil, &NoCandidateError{Reason: ReasonNoneSuitable}
	}

	ctx.Slot = act.Slot
	best := Rank(candidates, profile, ctx)[0].Location

	slot := act.Slot
	if slot == "" {
		slot = defaultMealSlots[act.Meal]
	}
	duration, ok := mealDurations[act.Meal]
	if !ok {
		duration = mealDurations[MealLunch]
	}

	activity := Activity{
		Kind:        KindPlace,
		ID:          uuid.NewString(),
		Title:       best.Name,
		Slot:        slot,
		DurationMin: duration,
		LocationID:  best.ID,
		Meal:        act.Meal,
		Coords:      best.Coords,
	}

	return &Recommendation{
		Location: best,
		Activity: activity,
		InsertAt: mealInsertIndex(day, act.Meal, act.AfterActivityID),
	}, nil
}

func recommendExperience(act AddExperience, day []Activity, pool []*Location, profile *TravelerProfile, ctx ScoreContext) (*Recommendation, error) {
	candidates := pool
	if act.Category != "" {
		candidates = make([]*Location, 0, len(pool))
		for _, loc := range pool {
			if loc.Category == act.Category {
				candidates = append(candidates, loc)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, &NoCandidateError{Reason: ReasonNoneSuitable}
	}

	ctx.Slot = act.Slot
	best := Rank(candidates, profile, ctx)[0].Location

	duration := best.VisitMinutes
	if duration <= 0 {
		duration = defaultExperienceMinutes
	}

	activity := Activity{
		Kind:        KindPlace,
		ID:          uuid.NewString(),
		Title:       best.Name,
		Slot:        act.Slot,
		DurationMin: duration,
		LocationID:  best.ID,
		Coords:      best.Coords,
		Note:        string(best.Category),
	}

	return &Recommendation{
		Location: best,
		Activity: activity,
		InsertAt: experienceInsertIndex(day, act.Slot),
	}, nil
}

// mealInsertIndex places a meal within the day's sequence. An explicit
// "insert after activity X" instruction wins over the type defaults and
// falls back to them when the referenced id is absent.
func mealInsertIndex(day []Activity, meal MealType, afterID string) int {
	if afterID != "" {
		for i := range day {
			if day[i].ID == afterID {
				return i + 1
			}
		}
	}

	switch meal {
	case MealBreakfast:
		return 0
	case MealLunch:
		// Immediately after the last morning activity, or at the
		// midpoint of the day when there is none.
		last := -1
		for i := range day {
			if day[i].Slot == SlotMorning {
				last = i
			}
		}
		if last >= 0 {
			return last + 1
		}
		return len(day) / 2
	default:
		// Dinner and snacks append at the end of the day.
		return len(day)
	}
}

// experienceInsertIndex mirrors the meal policy by time-of-day slot.
func experienceInsertIndex(day []Activity, slot TimeSlot) int {
	switch slot {
	case SlotMorning:
		// Before the first non-morning place activity.
		for i := range day {
			if day[i].Kind == KindPlace && day[i].Slot != SlotMorning {
				return i
			}
		}
		return 0
	case SlotAfternoon:
		for i := range day {
			if day[i].Slot == SlotAfternoon {
				return i
			}
		}
		return len(day) / 2
	default:
		return len(day)
	}
}

// Dietary restriction tags mapped to venue keywords that conflict with
// them. Deliberately conservative: only unambiguous conflicts exclude.
var dietaryConflicts = map[string][]string{
	"vegetarian": {"yakiniku", "steakhouse", "bbq"},
	"vegan":      {"yakiniku", "steakhouse", "bbq", "cheese"},
}

func filterDietary(candidates []*Location, dietary []string) []*Location {
	if len(dietary) == 0 {
		return candidates
	}
	out := make([]*Location, 0, len(candidates))
	for _, loc := range candidates {
		if conflictsWithDiet(loc, dietary) {
			continue
		}
		out = append(out, loc)
	}
	// A restriction must never empty the pool outright; better to show a
	// questionable venue than nothing at all.
	if len(out) == 0 {
		return candidates
	}
	return out
}

func conflictsWithDiet(loc *Location, dietary []string) bool {
	text := strings.ToLower(loc.Name + " " + loc.Description)
	for _, tag := range dietary {
		for _, term := range dietaryConflicts[strings.ToLower(strings.TrimSpace(tag))] {
			if strings.Contains(text, term) {
				return true
			}
		}
	}
	return false
}
