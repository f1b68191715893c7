package domain

import "testing"

func yes() *bool { v := true; return &v }
func no() *bool  { v := false; return &v }

func TestBreakfastFilter(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want bool
	}{
		{
			name: "cafe with breakfast flag, opens early",
			loc: &Location{
				Name:     "Sunrise Café",
				Category: CategoryCafe,
				Meals:    MealFlags{Breakfast: MealYes},
				Hours:    []HoursPeriod{{Weekday: Monday, Open: "07:00", Close: "15:00"}},
			},
			want: true,
		},
		{
			name: "bar excluded even when it opens early",
			loc: &Location{
				Name:     "Golden Izakaya",
				Category: CategoryBar,
				Hours:    []HoursPeriod{{Weekday: Monday, Open: "08:00", Close: "23:00"}},
			},
			want: false,
		},
		{
			name: "pub tag excluded without category",
			loc:  &Location{Name: "The Anchor", Tags: []string{"pub"}},
			want: false,
		},
		{
			name: "keyword fallback excludes ramen shop",
			loc:  &Location{Name: "Ichiban Ramen", Description: "tonkotsu specialist"},
			want: false,
		},
		{
			name: "keyword fallback includes bakery",
			loc:  &Location{Name: "Corner Bakery", Description: "fresh bread and coffee"},
			want: true,
		},
		{
			name: "both flags explicitly false",
			loc: &Location{
				Name:     "Night Diner",
				Category: CategoryRestaurant,
				Meals:    MealFlags{Breakfast: MealNo, Brunch: MealNo},
			},
			want: false,
		},
		{
			name: "opens at 11:00 is too late",
			loc: &Location{
				Name:     "Lunch Counter",
				Category: CategoryRestaurant,
				Hours:    []HoursPeriod{{Weekday: Monday, Open: "11:00", Close: "20:00"}},
			},
			want: false,
		},
		{
			name: "no signals at all defaults to include",
			loc:  &Location{Name: "Mystery Spot", Category: CategoryRestaurant},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuitableForMeal(tt.loc, MealBreakfast, Monday)
			if got != tt.want {
				t.Errorf("SuitableForMeal(%q, breakfast) = %v, want %v", tt.loc.Name, got, tt.want)
			}
		})
	}
}

func TestBreakfastFilterIdempotent(t *testing.T) {
	pool := []*Location{
		{Name: "Sunrise Café", Category: CategoryCafe, Meals: MealFlags{Breakfast: MealFlagOf(yes())}},
		{Name: "Golden Izakaya", Category: CategoryBar},
		{Name: "Corner Bakery"},
		{Name: "Night Diner", Category: CategoryRestaurant, Meals: MealFlags{Breakfast: MealFlagOf(no()), Brunch: MealFlagOf(no())}},
	}

	once := FilterForMealType(pool, MealBreakfast, Monday)
	twice := FilterForMealType(once, MealBreakfast, Monday)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("re-filtering changed element %d", i)
		}
	}
}

func TestLunchFilter(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want bool
	}{
		{
			name: "serves lunch",
			loc:  &Location{Name: "Noodle Bar", Meals: MealFlags{Lunch: MealYes}},
			want: true,
		},
		{
			name: "dinner-only specialist",
			loc:  &Location{Name: "Omakase", Meals: MealFlags{Lunch: MealNo, Dinner: MealYes}},
			want: false,
		},
		{
			name: "dinner specialist that also does breakfast stays",
			loc:  &Location{Name: "All Day", Meals: MealFlags{Lunch: MealNo, Dinner: MealYes, Breakfast: MealYes}},
			want: true,
		},
		{
			name: "opens at 17:00 is too late",
			loc: &Location{
				Name:  "Evening Grill",
				Hours: []HoursPeriod{{Weekday: Monday, Open: "17:00", Close: "23:00"}},
			},
			want: false,
		},
		{
			name: "no signal defaults to include",
			loc:  &Location{Name: "Mystery Spot"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuitableForMeal(tt.loc, MealLunch, Monday); got != tt.want {
				t.Errorf("SuitableForMeal(%q, lunch) = %v, want %v", tt.loc.Name, got, tt.want)
			}
		})
	}
}

func TestDinnerFilter(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want bool
	}{
		{
			name: "serves dinner",
			loc:  &Location{Name: "Omakase", Meals: MealFlags{Dinner: MealYes}},
			want: true,
		},
		{
			name: "daytime-only venue",
			loc:  &Location{Name: "Morning Room", Meals: MealFlags{Dinner: MealNo, Breakfast: MealYes}},
			want: false,
		},
		{
			name: "closes before 18:00",
			loc: &Location{
				Name:  "Tea House",
				Hours: []HoursPeriod{{Weekday: Monday, Open: "09:00", Close: "16:00"}},
			},
			want: false,
		},
		{
			name: "overnight close counts as late",
			loc: &Location{
				Name:  "Late Kitchen",
				Hours: []HoursPeriod{{Weekday: Monday, Open: "18:00", Close: "02:00", Overnight: true}},
			},
			want: true,
		},
		{
			name: "no signal defaults to include",
			loc:  &Location{Name: "Mystery Spot"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuitableForMeal(tt.loc, MealDinner, Monday); got != tt.want {
				t.Errorf("SuitableForMeal(%q, dinner) = %v, want %v", tt.loc.Name, got, tt.want)
			}
		})
	}
}

func TestFilterUnknownWeekdaySkipsTimeRules(t *testing.T) {
	// With no resolvable weekday the open-hours cutoffs cannot apply.
	loc := &Location{
		Name:  "Lunch Counter",
		Hours: []HoursPeriod{{Weekday: Monday, Open: "11:30", Close: "20:00"}},
	}
	if !SuitableForMeal(loc, MealBreakfast, "") {
		t.Error("unknown weekday must not trigger the opening-time cutoff")
	}
}
