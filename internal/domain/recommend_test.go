package domain

import (
	"errors"
	"testing"
)

func sampleDay() []Activity {
	return []Activity{
		{Kind: KindPlace, ID: "act-shrine", Title: "Meiji Shrine", Slot: SlotMorning, DurationMin: 60},
		{Kind: KindPlace, ID: "act-museum", Title: "City Museum", Slot: SlotAfternoon, DurationMin: 120},
	}
}

func dinnerPool() []*Location {
	return []*Location{
		{ID: "loc-1", Name: "Harbor Grill", Category: CategoryRestaurant, Meals: MealFlags{Dinner: MealYes}, Rating: 4.5, ReviewCount: 800},
		{ID: "loc-2", Name: "Sunset Bistro", Category: CategoryRestaurant, Meals: MealFlags{Dinner: MealYes}, Rating: 4.2, ReviewCount: 300},
	}
}

func TestRecommendDinnerAppendsAtEnd(t *testing.T) {
	gap := Gap{DayID: "day-1", Action: AddMeal{Meal: MealDinner, Slot: SlotEvening}}

	rec, err := Recommend(gap, sampleDay(), dinnerPool(), &TravelerProfile{}, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if rec.InsertAt != 2 {
		t.Errorf("dinner InsertAt = %d, want 2 (end of day)", rec.InsertAt)
	}
	if rec.Activity.DurationMin != 90 {
		t.Errorf("dinner duration = %d, want 90", rec.Activity.DurationMin)
	}
	if rec.Activity.Meal != MealDinner {
		t.Errorf("activity meal = %q, want dinner", rec.Activity.Meal)
	}
	if rec.Activity.ID == "" {
		t.Error("activity must receive a generated id")
	}
	if rec.Activity.LocationID != rec.Location.ID {
		t.Error("activity must reference the chosen location")
	}
}

func TestRecommendAfterActivityOverridesDefaults(t *testing.T) {
	// Breakfast would default to index 0; the explicit anchor wins.
	gap := Gap{Action: AddMeal{Meal: MealBreakfast, AfterActivityID: "act-museum"}}
	pool := []*Location{
		{ID: "loc-cafe", Name: "Sunrise Café", Category: CategoryCafe, Meals: MealFlags{Breakfast: MealYes}},
	}

	rec, err := Recommend(gap, sampleDay(), pool, nil, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.InsertAt != 2 {
		t.Errorf("InsertAt = %d, want 2 (after act-museum)", rec.InsertAt)
	}
}

func TestRecommendAfterActivityMissingFallsBack(t *testing.T) {
	gap := Gap{Action: AddMeal{Meal: MealBreakfast, AfterActivityID: "gone"}}
	pool := []*Location{{ID: "loc-cafe", Name: "Sunrise Café", Category: CategoryCafe}}

	rec, err := Recommend(gap, sampleDay(), pool, nil, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.InsertAt != 0 {
		t.Errorf("InsertAt = %d, want 0 (breakfast default)", rec.InsertAt)
	}
	if rec.Activity.DurationMin != 45 {
		t.Errorf("breakfast duration = %d, want 45", rec.Activity.DurationMin)
	}
}

func TestRecommendLunchAfterLastMorning(t *testing.T) {
	day := []Activity{
		{Kind: KindPlace, ID: "a", Slot: SlotMorning},
		{Kind: KindPlace, ID: "b", Slot: SlotMorning},
		{Kind: KindPlace, ID: "c", Slot: SlotEvening},
	}
	gap := Gap{Action: AddMeal{Meal: MealLunch}}
	pool := []*Location{{ID: "l", Name: "Noodle Bar", Category: CategoryRestaurant, Meals: MealFlags{Lunch: MealYes}}}

	rec, err := Recommend(gap, day, pool, nil, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.InsertAt != 2 {
		t.Errorf("lunch InsertAt = %d, want 2 (after last morning activity)", rec.InsertAt)
	}
	if rec.Activity.DurationMin != 60 {
		t.Errorf("lunch duration = %d, want 60", rec.Activity.DurationMin)
	}
}

func TestRecommendLunchMidpointWithoutMornings(t *testing.T) {
	day := []Activity{
		{Kind: KindPlace, ID: "a", Slot: SlotAfternoon},
		{Kind: KindPlace, ID: "b", Slot: SlotAfternoon},
		{Kind: KindPlace, ID: "c", Slot: SlotEvening},
		{Kind: KindPlace, ID: "d", Slot: SlotEvening},
	}
	gap := Gap{Action: AddMeal{Meal: MealLunch}}
	pool := []*Location{{ID: "l", Name: "Noodle Bar", Meals: MealFlags{Lunch: MealYes}}}

	rec, err := Recommend(gap, day, pool, nil, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.InsertAt != 2 {
		t.Errorf("lunch InsertAt = %d, want 2 (midpoint)", rec.InsertAt)
	}
}

func TestRecommendExperienceInsertion(t *testing.T) {
	day := sampleDay()
	pool := []*Location{
		{ID: "park", Name: "River Park", Category: CategoryPark, VisitMinutes: 45},
		{ID: "museum", Name: "Art Museum", Category: CategoryMuseum},
	}

	tests := []struct {
		name         string
		action       AddExperience
		wantInsert   int
		wantDuration int
		wantLocation string
	}{
		{
			name:         "morning inserts before first non-morning place",
			action:       AddExperience{Slot: SlotMorning, Category: CategoryPark},
			wantInsert:   1,
			wantDuration: 45,
			wantLocation: "park",
		},
		{
			name:         "afternoon inserts at first afternoon activity",
			action:       AddExperience{Slot: SlotAfternoon, Category: CategoryPark},
			wantInsert:   1,
			wantDuration: 45,
			wantLocation: "park",
		},
		{
			name:         "evening appends with default duration",
			action:       AddExperience{Slot: SlotEvening, Category: CategoryMuseum},
			wantInsert:   2,
			wantDuration: 90,
			wantLocation: "museum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := Gap{Action: tt.action}
			rec, err := Recommend(gap, day, pool, nil, nil, Monday)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if rec.InsertAt != tt.wantInsert {
				t.Errorf("InsertAt = %d, want %d", rec.InsertAt, tt.wantInsert)
			}
			if rec.Activity.DurationMin != tt.wantDuration {
				t.Errorf("DurationMin = %d, want %d", rec.Activity.DurationMin, tt.wantDuration)
			}
			if rec.Location.ID != tt.wantLocation {
				t.Errorf("Location.ID = %q, want %q", rec.Location.ID, tt.wantLocation)
			}
		})
	}
}

func TestRecommendNotFoundReasons(t *testing.T) {
	gap := Gap{Action: AddMeal{Meal: MealDinner}}

	tests := []struct {
		name string
		pool []*Location
		used map[string]bool
		want NotFoundReason
	}{
		{
			name: "empty pool",
			pool: nil,
			want: ReasonEmptyPool,
		},
		{
			name: "all candidates already used",
			pool: dinnerPool(),
			used: map[string]bool{"loc-1": true, "loc-2": true},
			want: ReasonAllUsed,
		},
		{
			name: "nothing suitable after filtering",
			pool: []*Location{{ID: "tea", Name: "Tea House", Hours: []HoursPeriod{{Weekday: Monday, Open: "09:00", Close: "16:00"}}}},
			want: ReasonNoneSuitable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Recommend(gap, nil, tt.pool, nil, tt.used, Monday)
			var nce *NoCandidateError
			if !errors.As(err, &nce) {
				t.Fatalf("Recommend() error = %v, want NoCandidateError", err)
			}
			if nce.Reason != tt.want {
				t.Errorf("reason = %q, want %q", nce.Reason, tt.want)
			}
		})
	}
}

func TestRecommendInvalidGap(t *testing.T) {
	_, err := Recommend(Gap{}, nil, dinnerPool(), nil, nil, Monday)
	if !errors.Is(err, ErrInvalidGap) {
		t.Errorf("Recommend() error = %v, want ErrInvalidGap", err)
	}
}

func TestRecommendPicksHighestScore(t *testing.T) {
	// Identical venues except popularity; the better-reviewed one wins.
	gap := Gap{Action: AddMeal{Meal: MealDinner}}
	rec, err := Recommend(gap, nil, dinnerPool(), &TravelerProfile{}, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.Location.ID != "loc-1" {
		t.Errorf("chose %q, want loc-1 (higher rating and review count)", rec.Location.ID)
	}
}

func TestRecommendDietaryExclusion(t *testing.T) {
	gap := Gap{Action: AddMeal{Meal: MealDinner}}
	pool := []*Location{
		{ID: "meat", Name: "Yakiniku Heaven", Meals: MealFlags{Dinner: MealYes}, Rating: 4.9, ReviewCount: 2000},
		{ID: "veg", Name: "Green Table", Meals: MealFlags{Dinner: MealYes}, Rating: 4.0, ReviewCount: 200},
	}
	profile := &TravelerProfile{Dietary: []string{"vegetarian"}}

	rec, err := Recommend(gap, nil, pool, profile, nil, Monday)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.Location.ID != "veg" {
		t.Errorf("chose %q, want veg (yakiniku conflicts with vegetarian)", rec.Location.ID)
	}
}
