package models

import (
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/normalize"
)

// ExpiringSoonDays is the horizon, in days, of the "expiring soon" flag
const ExpiringSoonDays = 7

// AvailableIngredient is a pantry item prepared for matching
type AvailableIngredient struct {
	Name                string     `json:"name"`
	NormalizedName      string     `json:"normalized_name"`
	Category            string     `json:"category,omitempty"`
	Quantity            float64    `json:"quantity"`
	Unit                string     `json:"unit,omitempty"`
	ExpirationDate      *time.Time `json:"expiration_date,omitempty"`
	DaysUntilExpiration *int       `json:"days_until_expiration,omitempty"`
	IsExpired           bool       `json:"is_expired"`
	IsExpiringSoon      bool       `json:"is_expiring_soon"`
	FreshnessScore      float64    `json:"freshness_score"`
}

// NewAvailableIngredient creates an ingredient with unknown expiration
func NewAvailableIngredient(name, category string, quantity float64, unit string) AvailableIngredient {
	return AvailableIngredient{
		Name:           name,
		NormalizedName: normalize.Ingredient(name),
		Category:       category,
		Quantity:       quantity,
		Unit:           unit,
		FreshnessScore: FreshnessScore(nil),
	}
}

// WithDaysUntilExpiration returns a copy with the expiry flags derived from days
func (a AvailableIngredient) WithDaysUntilExpiration(days int) AvailableIngredient {
	a.DaysUntilExpiration = &days
	a.IsExpired = days < 0
	a.IsExpiringSoon = days >= 0 && days <= ExpiringSoonDays
	a.FreshnessScore = FreshnessScore(&days)
	return a
}

// WithExpiration returns a copy expiring on date, counted in calendar days from today
func (a AvailableIngredient) WithExpiration(date, today time.Time) AvailableIngredient {
	a.ExpirationDate = &date
	return a.WithDaysUntilExpiration(DaysBetween(today, date))
}

// FreshnessScore maps days until expiration to a score in [0,1].
// Unknown expiration counts as perfectly fresh.
func FreshnessScore(days *int) float64 {
	if days == nil {
		return 1.0
	}
	switch d := *days; {
	case d < 0:
		return 0.0
	case d <= 3:
		return 0.3
	case d <= 7:
		return 0.6
	case d <= 14:
		return 0.8
	default:
		return 1.0
	}
}

// DaysBetween returns the number of calendar days from one date to another
func DaysBetween(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// MatchType is the strategy that produced an ingredient match
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchFuzzy      MatchType = "fuzzy"
	MatchCategory   MatchType = "category"
	MatchSubstitute MatchType = "substitute"
)

// IngredientMatch is the outcome of matching one required ingredient
type IngredientMatch struct {
	RequiredIngredient  string    `json:"required_ingredient"`
	AvailableIngredient string    `json:"available_ingredient,omitempty"`
	MatchType           MatchType `json:"match_type,omitempty"`
	MatchConfidence     float64   `json:"match_confidence"`
	IsMatched           bool      `json:"is_matched"`
	QuantityAvailable   *float64  `json:"quantity_available,omitempty"`
	Unit                string    `json:"unit,omitempty"`
	Notes               string    `json:"notes,omitempty"`
}

// SuggestionFilters narrows and tunes a suggestion request.
// MinMatchPercentage is expressed in percent (0-100).
type SuggestionFilters struct {
	MaxSuggestions      int          `json:"max_suggestions" validate:"min=1,max=50"`
	MinMatchPercentage  float64      `json:"min_match_percentage" validate:"min=0,max=100"`
	MaxPrepTime         *int         `json:"max_prep_time,omitempty" validate:"omitempty,min=0"`
	MaxCookTime         *int         `json:"max_cook_time,omitempty" validate:"omitempty,min=0"`
	DifficultyLevels    []Difficulty `json:"difficulty_levels,omitempty" validate:"omitempty,dive,oneof=easy medium hard"`
	MealTypes           []string     `json:"meal_types,omitempty" validate:"omitempty,dive,required"`
	DietaryRestrictions []string     `json:"dietary_restrictions,omitempty" validate:"omitempty,dive,required"`
	ExcludeExpired      bool         `json:"exclude_expired"`
	PrioritizeExpiring  bool         `json:"prioritize_expiring"`
	IncludeSubstitutes  bool         `json:"include_substitutes"`
}

// DefaultSuggestionFilters returns the filters used when a request specifies none
func DefaultSuggestionFilters() SuggestionFilters {
	return SuggestionFilters{
		MaxSuggestions:     10,
		MinMatchPercentage: 30,
		ExcludeExpired:     true,
		PrioritizeExpiring: true,
		IncludeSubstitutes: true,
	}
}

// ScoreBreakdown holds the additive components of a priority score
type ScoreBreakdown struct {
	MatchPercentage float64 `json:"match_percentage"`
	DifficultyBonus float64 `json:"difficulty_bonus"`
	TimeBonus       float64 `json:"time_bonus"`
	FreshnessBonus  float64 `json:"freshness_bonus"`
	ExpirationBonus float64 `json:"expiration_bonus"`
	PopularityBonus float64 `json:"popularity_bonus"`
}

// Total returns the sum of all components
func (b ScoreBreakdown) Total() float64 {
	return b.MatchPercentage + b.DifficultyBonus + b.TimeBonus +
		b.FreshnessBonus + b.ExpirationBonus + b.PopularityBonus
}

// Map returns the components keyed by name
func (b ScoreBreakdown) Map() map[string]float64 {
	return map[string]float64{
		"match_percentage": b.MatchPercentage,
		"difficulty_bonus": b.DifficultyBonus,
		"time_bonus":       b.TimeBonus,
		"freshness_bonus":  b.FreshnessBonus,
		"expiration_bonus": b.ExpirationBonus,
		"popularity_bonus": b.PopularityBonus,
	}
}

// LeftoverSuggestion is one ranked recipe suggestion
type LeftoverSuggestion struct {
	Recipe             Recipe            `json:"recipe"`
	MatchPercentage    float64           `json:"match_percentage"`
	MatchedIngredients []IngredientMatch `json:"matched_ingredients"`
	MissingIngredients []IngredientMatch `json:"missing_ingredients"`
	PriorityScore      float64           `json:"priority_score"`
	SuggestionReason   string            `json:"suggestion_reason"`
	DifficultyBonus    float64           `json:"difficulty_bonus"`
	FreshnessBonus     float64           `json:"freshness_bonus"`
	ExpirationUrgency  float64           `json:"expiration_urgency"`
	ScoreBreakdown     ScoreBreakdown    `json:"score_breakdown"`
}

// SuggestionResult is the response of a suggestion request
type SuggestionResult struct {
	Suggestions                []LeftoverSuggestion `json:"suggestions"`
	TotalIngredientsConsidered int                  `json:"total_ingredients_considered"`
	RecipesAnalyzed            int                  `json:"recipes_analyzed"`
	SuggestionsReturned        int                  `json:"suggestions_returned"`
	ProcessingTime             time.Duration        `json:"processing_time"`
	FiltersApplied             SuggestionFilters    `json:"filters_applied"`
}
