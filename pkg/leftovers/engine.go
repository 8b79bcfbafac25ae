// Package leftovers ranks recipes by how well they use what is already in the
// pantry. Everything here is a pure computation over in-memory records; an
// Engine holds no per-request state and is safe for concurrent use.
package leftovers

import (
	"sort"
	"strings"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/matching"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

// Engine produces leftover suggestions
type Engine struct {
	matcher *matching.Matcher
	logger  *logger.Logger
}

// New creates a new suggestion engine
func New(matcher *matching.Matcher) *Engine {
	if matcher == nil {
		matcher = matching.New(nil)
	}
	return &Engine{
		matcher: matcher,
		logger:  logger.New(""),
	}
}

// Suggest ranks the candidate recipes against the available ingredients and
// returns at most filters.MaxSuggestions suggestions, best first.
// Empty inputs give an empty result, never an error.
// Filters must be validated or start from models.DefaultSuggestionFilters:
// the zero value has MaxSuggestions 0 and so returns no suggestions.
func (e *Engine) Suggest(available []models.AvailableIngredient, recipes []models.Recipe, filters models.SuggestionFilters) *models.SuggestionResult {
	start := time.Now()
	result := &models.SuggestionResult{
		Suggestions:                []models.LeftoverSuggestion{},
		TotalIngredientsConsidered: len(available),
		RecipesAnalyzed:            len(recipes),
		FiltersApplied:             filters,
	}
	defer func() {
		result.SuggestionsReturned = len(result.Suggestions)
		result.ProcessingTime = time.Since(start)
	}()

	if len(available) == 0 {
		e.logger.Debug("No available ingredients, nothing to suggest")
		return result
	}

	passing := e.FilterAvailable(recipes, available, filters)
	if len(passing) == 0 {
		e.logger.Debug("No recipes passed the availability filter (%d analyzed)", len(recipes))
		return result
	}

	suggestions := make([]models.LeftoverSuggestion, 0, len(passing))
	for _, sr := range passing {
		breakdown := PriorityScore(sr.Recipe, sr.Score.MatchPercentage, sr.Score.Matched, available, filters)
		suggestions = append(suggestions, models.LeftoverSuggestion{
			Recipe:             sr.Recipe,
			MatchPercentage:    sr.Score.MatchPercentage,
			MatchedIngredients: sr.Score.Matched,
			MissingIngredients: sr.Score.Missing,
			PriorityScore:      breakdown.Total(),
			SuggestionReason:   reason(sr.Recipe, sr.Score, available),
			DifficultyBonus:    breakdown.DifficultyBonus,
			FreshnessBonus:     breakdown.FreshnessBonus,
			ExpirationUrgency:  breakdown.ExpirationBonus,
			ScoreBreakdown:     breakdown,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PriorityScore > suggestions[j].PriorityScore
	})

	if filters.MaxSuggestions >= 0 && len(suggestions) > filters.MaxSuggestions {
		suggestions = suggestions[:filters.MaxSuggestions]
	}

	result.Suggestions = suggestions
	e.logger.Info("Generated %d suggestions from %d ingredients and %d recipes",
		len(suggestions), len(available), len(recipes))
	return result
}

func reason(recipe models.Recipe, score RecipeScore, available []models.AvailableIngredient) string {
	var parts []string
	switch {
	case score.MatchPercentage >= 80:
		parts = append(parts, "High ingredient match")
	case score.MatchPercentage >= 60:
		parts = append(parts, "Good ingredient match")
	default:
		parts = append(parts, "Partial ingredient match")
	}

	if countExpiringSoon(score.Matched, available) > 0 {
		parts = append(parts, "uses expiring ingredients")
	}
	if recipe.Difficulty == models.DifficultyEasy {
		parts = append(parts, "easy to prepare")
	}

	return strings.Join(parts, ", ")
}
