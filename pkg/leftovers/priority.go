package leftovers

import (
	"math"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

var difficultyBonus = map[models.Difficulty]float64{
	models.DifficultyEasy:   15,
	models.DifficultyMedium: 10,
	models.DifficultyHard:   5,
}

// PriorityScore computes the additive desirability components of a recipe.
// The total is unbounded; higher is better.
func PriorityScore(recipe models.Recipe, matchPercentage float64, matched []models.IngredientMatch, available []models.AvailableIngredient, filters models.SuggestionFilters) models.ScoreBreakdown {
	b := models.ScoreBreakdown{
		MatchPercentage: matchPercentage * 0.5,
		DifficultyBonus: difficultyBonus[recipe.Difficulty],
		TimeBonus:       timeBonus(recipe.TotalTime()),
		PopularityBonus: math.Min(float64(recipe.Servings)*2.0, 10.0),
	}

	if len(matched) > 0 {
		var total float64
		for _, m := range matched {
			if a, ok := resolve(m, available); ok {
				total += a.FreshnessScore
			}
		}
		b.FreshnessBonus = total / float64(len(matched)) * 10
	}

	if filters.PrioritizeExpiring {
		b.ExpirationBonus = math.Min(float64(countExpiringSoon(matched, available))*5.0, 20.0)
	}

	return b
}

func timeBonus(totalMinutes int) float64 {
	switch {
	case totalMinutes <= 30:
		return 15
	case totalMinutes <= 60:
		return 10
	case totalMinutes <= 90:
		return 5
	default:
		return 0
	}
}

func countExpiringSoon(matched []models.IngredientMatch, available []models.AvailableIngredient) int {
	count := 0
	for _, m := range matched {
		if a, ok := resolve(m, available); ok && a.IsExpiringSoon {
			count++
		}
	}
	return count
}
