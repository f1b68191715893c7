package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

// Wire shapes shared by the recommend and history handlers. The domain
// types carry no JSON tags on purpose; the API surface owns its names.

type coordsPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type activityPayload struct {
	Kind        string         `json:"kind"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slot        string         `json:"slot,omitempty"`
	DurationMin int            `json:"duration_min,omitempty"`
	LocationID  string         `json:"location_id,omitempty"`
	Meal        string         `json:"meal,omitempty"`
	Coords      *coordsPayload `json:"coords,omitempty"`
	Note        string         `json:"note,omitempty"`
}

type locationPayload struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	City        string         `json:"city,omitempty"`
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Coords      *coordsPayload `json:"coords,omitempty"`
	PriceTier   int            `json:"price_tier"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func toCoordsPayload(c *domain.Coordinates) *coordsPayload {
	if c == nil {
		return nil
	}
	return &coordsPayload{Lat: c.Lat, Lng: c.Lng}
}

func fromCoordsPayload(c *coordsPayload) *domain.Coordinates {
	if c == nil {
		return nil
	}
	return &domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func toActivityPayload(a domain.Activity) activityPayload {
	return activityPayload{
		Kind:        string(a.Kind),
		ID:          a.ID,
		Title:       a.Title,
		Slot:        string(a.Slot),
		DurationMin: a.DurationMin,
		LocationID:  a.LocationID,
		Meal:        string(a.Meal),
		Coords:      toCoordsPayload(a.Coords),
		Note:        a.Note,
	}
}

func fromActivityPayload(p activityPayload) domain.Activity {
	kind := domain.ActivityKind(p.Kind)
	if kind != domain.KindPlace {
		kind = domain.KindOther
	}
	return domain.Activity{
		Kind:        kind,
		ID:          p.ID,
		Title:       p.Title,
		Slot:        domain.ParseTimeSlot(p.Slot),
		DurationMin: p.DurationMin,
		LocationID:  p.LocationID,
		Meal:        domain.ParseMealType(p.Meal),
		Coords:      fromCoordsPayload(p.Coords),
		Note:        p.Note,
	}
}

func toLocationPayload(l *domain.Location) locationPayload {
	return locationPayload{
		ID:          l.ID,
		Name:        l.Name,
		City:        l.City,
		Category:    string(l.Category),
		Tags:        l.Tags,
		Coords:      toCoordsPayload(l.Coords),
		PriceTier:   l.PriceTier,
		Rating:      l.Rating,
		ReviewCount: l.ReviewCount,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, reason string) {
	writeJSON(w, status, errorResponse{Error: code, Reason: reason})
}
