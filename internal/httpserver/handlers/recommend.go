package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wayfarelabs/wayfare/internal/domain"
	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/logger"
	"github.com/wayfarelabs/wayfare/internal/provider"
)

type gapPayload struct {
	DayID  string `json:"day_id"`
	Action string `json:"action"` // "add_meal" | "add_experience"

	// add_meal fields
	Meal            string `json:"meal,omitempty"`
	AfterActivityID string `json:"after_activity_id,omitempty"`

	// add_experience fields
	Category string `json:"category,omitempty"`

	// shared
	Slot string `json:"slot,omitempty"`
}

type budgetPayload struct {
	PerDay int `json:"per_day"`
	Total  int `json:"total"`
}

type profilePayload struct {
	Interests        []string      `json:"interests"`
	Style            string        `json:"style"`
	Budget           budgetPayload `json:"budget"`
	Dietary          []string      `json:"dietary"`
	RecentCategories []string      `json:"recent_categories"`
}

type recommendRequest struct {
	TripID          string            `json:"trip_id"`
	City            string            `json:"city"`
	StartDate       string            `json:"start_date"` // "YYYY-MM-DD"
	DayIndex        int               `json:"day_index"`
	Day             []activityPayload `json:"day"`
	Gap             gapPayload        `json:"gap"`
	Profile         *profilePayload   `json:"profile"`
	UsedLocationIDs []string          `json:"used_location_ids"`
	ClockMinutes    *int              `json:"clock_minutes"` // minutes since local midnight, optional
}

type recommendResponse struct {
	Location locationPayload `json:"location"`
	Activity activityPayload `json:"activity"`
	InsertAt int             `json:"insert_at"`
}

// Recommend fills one itinerary gap: it resolves the weekday, pulls the
// city's candidate pool, optionally drops anything closed at the given
// clock time, then delegates picking and placement to the decision core.
func Recommend(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
			return
		}
		if req.City == "" {
			writeError(w, http.StatusBadRequest, "invalid_body", "city is required")
			return
		}

		action, err := gapAction(req.Gap)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_gap", err.Error())
			return
		}
		gap := domain.Gap{
			DayID:    req.Gap.DayID,
			DayIndex: req.DayIndex,
			Action:   action,
		}

		// Restrict the pool fetch by category only for experience gaps;
		// meals select from the whole pool via the suitability filter.
		var poolCategory domain.Category
		if exp, ok := action.(domain.AddExperience); ok {
			poolCategory = exp.Category
		}

		pool, err := d.Provider.Candidates(r.Context(), req.City, poolCategory)
		if err != nil {
			if errors.Is(err, provider.ErrNoCityData) {
				writeError(w, http.StatusNotFound, "no_city_data", "")
				return
			}
			d.Logger.Error("candidate pool fetch failed",
				logger.String("city", req.City),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "pool_unavailable", "")
			return
		}

		weekday, _ := domain.WeekdayFor(req.StartDate, req.DayIndex)

		// Pre-filter by open hours when the caller supplied a clock time.
		// Unknown hours pass through; IsOpen gives the benefit of the doubt.
		if req.ClockMinutes != nil && weekday != "" {
			open := make([]*domain.Location, 0, len(pool))
			for _, loc := range pool {
				if domain.IsOpen(loc.Hours, weekday, *req.ClockMinutes) {
					open = append(open, loc)
				}
			}
			pool = open
		}

		day := make([]domain.Activity, 0, len(req.Day))
		for _, p := range req.Day {
			day = append(day, fromActivityPayload(p))
		}

		used := make(map[string]bool, len(req.UsedLocationIDs))
		for _, id := range req.UsedLocationIDs {
			used[id] = true
		}

		rec, err := domain.Recommend(gap, day, pool, fromProfilePayload(req.Profile), used, weekday)
		if err != nil {
			var nc *domain.NoCandidateError
			switch {
			case errors.As(err, &nc):
				writeError(w, http.StatusNotFound, "no_candidate", string(nc.Reason))
			case errors.Is(err, domain.ErrInvalidGap):
				writeError(w, http.StatusBadRequest, "invalid_gap", "")
			default:
				d.Logger.Error("recommendation failed", logger.Error(err))
				writeError(w, http.StatusInternalServerError, "internal_error", "")
			}
			return
		}

		d.Logger.Info("gap filled",
			logger.String("trip_id", req.TripID),
			logger.String("city", req.City),
			logger.String("location_id", rec.Location.ID),
			logger.Int("insert_at", rec.InsertAt))

		writeJSON(w, http.StatusOK, recommendResponse{
			Location: toLocationPayload(rec.Location),
			Activity: toActivityPayload(rec.Activity),
			InsertAt: rec.InsertAt,
		})
	}
}

func gapAction(p gapPayload) (domain.GapAction, error) {
	switch p.Action {
	case "add_meal":
		meal := domain.ParseMealType(p.Meal)
		if meal == "" {
			return nil, errors.New("add_meal requires a valid meal type")
		}
		return domain.AddMeal{
			Meal:            meal,
			Slot:            domain.ParseTimeSlot(p.Slot),
			AfterActivityID: p.AfterActivityID,
		}, nil
	case "add_experience":
		return domain.AddExperience{
			Slot:     domain.ParseTimeSlot(p.Slot),
			Category: domain.ParseCategory(p.Category),
		}, nil
	default:
		return nil, errors.New("unknown gap action")
	}
}

func fromProfilePayload(p *profilePayload) *domain.TravelerProfile {
	if p == nil {
		return nil
	}
	recent := make([]domain.Category, 0, len(p.RecentCategories))
	for _, c := range p.RecentCategories {
		if parsed := domain.ParseCategory(c); parsed != "" {
			recent = append(recent, parsed)
		}
	}
	return &domain.TravelerProfile{
		Interests: p.Interests,
		Style:     domain.ParseTravelStyle(p.Style),
		Budget: domain.Budget{
			PerDay: p.Budget.PerDay,
			Total:  p.Budget.Total,
		},
		Dietary:          p.Dietary,
		RecentCategories: recent,
	}
}
