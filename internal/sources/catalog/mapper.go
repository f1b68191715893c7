package catalog

import (
	"fmt"
	"strings"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

// Mapper converts catalog entries to domain.Location records.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapLocations converts a parsed catalog file into per-city location
// lists. Entries without a name are skipped; an entry without an id
// derives one from its name. Malformed optional fields never fail the
// whole mapping, they degrade to the domain's neutral defaults.
func (m *Mapper) MapLocations(file File) (map[string][]*domain.Location, error) {
	catalog := make(map[string][]*domain.Location, len(file.Cities))
	total := 0

	for city, entries := range file.Cities {
		city = strings.ToLower(strings.TrimSpace(city))
		if city == "" {
			continue
		}

		locs := make([]*domain.Location, 0, len(entries))
		for _, props := range entries {
			loc := m.mapLocation(city, props)
			if loc == nil {
				continue
			}
			locs = append(locs, loc)
			total++
		}
		if len(locs) > 0 {
			catalog[city] = locs
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("no valid locations found in catalog")
	}

	return catalog, nil
}

func (m *Mapper) mapLocation(city string, props LocationProps) *domain.Location {
	name := strings.TrimSpace(props.Name)
	if name == "" {
		return nil
	}

	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = slugify(name)
	}

	loc := &domain.Location{
		ID:          id,
		Name:        name,
		City:        city,
		Category:    domain.ParseCategory(props.Category),
		Tags:        props.Tags,
		PriceTier:   clampTier(props.PriceTier),
		Rating:      props.Rating,
		ReviewCount: props.Reviews,
		VisitMinutes: props.VisitMin,
		Description: props.Description,
		Meals: domain.MealFlags{
			Breakfast: domain.MealFlagOf(props.ServesBreakfast),
			Brunch:    domain.MealFlagOf(props.ServesBrunch),
			Lunch:     domain.MealFlagOf(props.ServesLunch),
			Dinner:    domain.MealFlagOf(props.ServesDinner),
		},
	}

	if props.Lat != nil && props.Lng != nil {
		loc.Coords = &domain.Coordinates{Lat: *props.Lat, Lng: *props.Lng}
	}

	seen := make(map[domain.Weekday]bool, len(props.Hours))
	for _, h := range props.Hours {
		day := domain.ParseWeekday(h.Day)
		if day == "" || seen[day] {
			// At most one period per weekday; later duplicates lose.
			continue
		}
		seen[day] = true
		loc.Hours = append(loc.Hours, domain.HoursPeriod{
			Weekday:   day,
			Open:      h.Open,
			Close:     h.Close,
			Overnight: h.Overnight,
		})
	}

	return loc
}

func clampTier(tier int) int {
	if tier < 0 {
		return 0
	}
	if tier > 4 {
		return 4
	}
	return tier
}

// slugify derives a stable id from a location name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
