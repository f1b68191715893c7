package domain

import (
	"sort"
	"strings"
)

const (
	// Scoring weights (sub-scores are each normalized to 0..1 first)
	WeightInterest   = 0.30
	WeightStyle      = 0.15
	WeightBudget     = 0.20
	WeightDiversity  = 0.15
	WeightPopularity = 0.20

	// Neutral baseline when a signal is absent
	NeutralInterest = 0.5
	NeutralBudget   = 0.7

	// Diversity penalty per repeat of the same category in recent history
	DiversityRepeatPenalty = 0.35

	// Bayesian shrinkage prior for popularity: a location with few
	// reviews is pulled toward the global mean instead of being trusted
	// at face value.
	PopularityPriorMean   = 3.5
	PopularityPriorWeight = 20.0

	// Typical dwell time assumed when a location does not state one
	DefaultVisitMinutes = 90
)

// ScoreContext carries the slot-specific inputs of a scoring pass.
type ScoreContext struct {
	// AvailableMinutes is the time budget of the slot being filled.
	// 0 means unknown; no overrun penalty is applied.
	AvailableMinutes int

	// RecentCategories overrides the profile's recent history when set.
	RecentCategories []Category

	// Slot is the desired time-of-day bucket.
	Slot TimeSlot

	// TripDays amortizes a total budget cap; 0 means unknown.
	TripDays int
}

// ScoredLocation pairs a candidate with its computed fit score.
type ScoredLocation struct {
	Location *Location
	Score    float64
}

// Score computes the fit of one location against a traveler profile.
// It is total over well-typed input: every missing optional field
// contributes its neutral default instead of failing.
func Score(loc *Location, profile *TravelerProfile, ctx ScoreContext) float64 {
	if loc == nil {
		return 0
	}
	if profile == nil {
		profile = &TravelerProfile{}
	}

	recent := ctx.RecentCategories
	if recent == nil {
		recent = profile.RecentCategories
	}

	return WeightInterest*interestScore(loc, profile) +
		WeightStyle*styleScore(loc, profile.Style) +
		WeightBudget*budgetScore(loc, profile.Budget, ctx) +
		WeightDiversity*diversityScore(loc.Category, recent) +
		WeightPopularity*popularityScore(loc)
}

// interestScore is the fraction of the traveler's interest tags the
// location satisfies. With no interests selected every candidate gets
// the neutral baseline so scoring never degenerates to all-zero.
func interestScore(loc *Location, profile *TravelerProfile) float64 {
	if len(profile.Interests) == 0 {
		return NeutralInterest
	}

	matched := 0
	for _, interest := range profile.Interests {
		if matchesInterest(loc, interest) {
			matched++
		}
	}
	return float64(matched) / float64(len(profile.Interests))
}

func matchesInterest(loc *Location, interest string) bool {
	interest = strings.ToLower(strings.TrimSpace(interest))
	if interest == "" {
		return false
	}
	if string(loc.Category) == interest {
		return true
	}
	for _, tag := range loc.Tags {
		if strings.ToLower(tag) == interest {
			return true
		}
	}
	return false
}

// styleScore adjusts for pacing: an intense style favors short dwell
// times so more fits into a day, a relaxed style favors long ones.
func styleScore(loc *Location, style TravelStyle) float64 {
	dur := float64(loc.VisitMinutes)
	if dur <= 0 {
		dur = DefaultVisitMinutes
	}

	switch style {
	case StyleIntense:
		return clamp01(1.0 - (dur-30.0)/180.0)
	case StyleRelaxed:
		return clamp01(dur / 180.0)
	default:
		return clamp01(1.0 - abs(dur-90.0)/180.0)
	}
}

// nominalCost maps a price tier to an order-of-magnitude spend.
var nominalCost = [5]float64{0, 15, 30, 60, 120}

// budgetScore penalizes locations whose price tier would eat a
// disproportionate share of the daily budget, plus a soft penalty when
// the visit does not fit the slot's time budget. Overruns never hard-
// exclude; exclusion thresholds belong to the caller.
func budgetScore(loc *Location, budget Budget, ctx ScoreContext) float64 {
	daily := float64(budget.PerDay)
	if daily <= 0 && budget.Total > 0 && ctx.TripDays > 0 {
		daily = float64(budget.Total) / float64(ctx.TripDays)
	}

	score := NeutralBudget
	if daily > 0 {
		tier := loc.PriceTier
		if tier < 0 {
			tier = 0
		}
		if tier > 4 {
			tier = 4
		}
		score = clamp01(1.0 - nominalCost[tier]/daily)
	}

	if ctx.AvailableMinutes > 0 {
		dur := loc.VisitMinutes
		if dur <= 0 {
			dur = DefaultVisitMinutes
		}
		if dur > ctx.AvailableMinutes {
			score *= 0.5
		}
	}

	return score
}

// diversityScore drops toward zero as the same category piles up in the
// recent history, so the model stops recommending a fourth museum in a row.
func diversityScore(cat Category, recent []Category) float64 {
	if cat == "" {
		return 1.0
	}
	repeats := 0
	for _, r := range recent {
		if r == cat {
			repeats++
		}
	}
	return clamp01(1.0 - DiversityRepeatPenalty*float64(repeats))
}

// popularityScore blends rating and review count with Bayesian
// shrinkage: (rating*n + prior*weight) / (n + weight), normalized to 0..1.
// A 5.0 with 2 reviews lands below a 4.6 with 5000.
func popularityScore(loc *Location) float64 {
	n := float64(loc.ReviewCount)
	if n < 0 {
		n = 0
	}
	rating := loc.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	if n == 0 && rating == 0 {
		return PopularityPriorMean / 5.0
	}
	shrunk := (rating*n + PopularityPriorMean*PopularityPriorWeight) / (n + PopularityPriorWeight)
	return clamp01(shrunk / 5.0)
}

// Rank scores every candidate and sorts descending. Equal scores sort
// alphabetically by name so results are reproducible.
func Rank(pool []*Location, profile *TravelerProfile, ctx ScoreContext) []ScoredLocation {
	ranked := make([]ScoredLocation, 0, len(pool))
	for _, loc := range pool {
		if loc == nil {
			continue
		}
		ranked = append(ranked, ScoredLocation{
			Location: loc,
			Score:    Score(loc, profile, ctx),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Location.Name < ranked[j].Location.Name
	})

	return ranked
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
