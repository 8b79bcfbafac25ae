package leftovers

import (
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

// RecipeScore is how well the pantry covers one recipe
type RecipeScore struct {
	MatchPercentage float64
	Matched         []models.IngredientMatch
	Missing         []models.IngredientMatch
}

// ScoreRecipe matches each required ingredient independently against the
// pantry. A pantry item may satisfy several required ingredients; quantities
// are not reserved.
func (e *Engine) ScoreRecipe(required []string, available []models.AvailableIngredient, includeSubstitutes bool) RecipeScore {
	score := RecipeScore{
		Matched: []models.IngredientMatch{},
		Missing: []models.IngredientMatch{},
	}
	if len(required) == 0 {
		return score
	}

	for _, name := range required {
		match := e.matcher.Match(name, available, includeSubstitutes)
		if match.IsMatched {
			score.Matched = append(score.Matched, match)
		} else {
			score.Missing = append(score.Missing, match)
		}
	}

	score.MatchPercentage = 100 * float64(len(score.Matched)) / float64(len(required))
	return score
}

// resolve returns the first pantry item carrying the matched name
func resolve(match models.IngredientMatch, available []models.AvailableIngredient) (models.AvailableIngredient, bool) {
	if !match.IsMatched {
		return models.AvailableIngredient{}, false
	}
	for _, a := range available {
		if a.Name == match.AvailableIngredient {
			return a, true
		}
	}
	return models.AvailableIngredient{}, false
}
