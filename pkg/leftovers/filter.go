package leftovers

import (
	"strings"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/validation"
)

// ScoredRecipe is a recipe that passed the availability filter, with its score
type ScoredRecipe struct {
	Recipe models.Recipe
	Score  RecipeScore
}

// FilterAvailable keeps the recipes the pantry covers well enough and that
// satisfy every active filter. Input order is preserved.
func (e *Engine) FilterAvailable(recipes []models.Recipe, available []models.AvailableIngredient, filters models.SuggestionFilters) []ScoredRecipe {
	out := make([]ScoredRecipe, 0, len(recipes))

	for _, recipe := range recipes {
		if err := validation.ValidateStruct(recipe); err != nil {
			e.logger.Warn("Skipping invalid recipe %q: %v", recipe.Name, err)
			continue
		}

		if !passesRecipeFilters(recipe, filters) {
			continue
		}

		score := e.ScoreRecipe(recipe.Ingredients, available, filters.IncludeSubstitutes)
		if score.MatchPercentage < filters.MinMatchPercentage {
			continue
		}

		if filters.ExcludeExpired && usesExpired(score.Matched, available) {
			continue
		}

		out = append(out, ScoredRecipe{Recipe: recipe, Score: score})
	}

	return out
}

// passesRecipeFilters applies the filters that depend on the recipe alone
func passesRecipeFilters(recipe models.Recipe, filters models.SuggestionFilters) bool {
	if len(filters.DifficultyLevels) > 0 && !containsDifficulty(filters.DifficultyLevels, recipe.Difficulty) {
		return false
	}

	// a missing time never satisfies a ceiling
	if filters.MaxPrepTime != nil && (recipe.PrepTime == nil || *recipe.PrepTime > *filters.MaxPrepTime) {
		return false
	}
	if filters.MaxCookTime != nil && (recipe.CookTime == nil || *recipe.CookTime > *filters.MaxCookTime) {
		return false
	}

	// meal types: any overlap
	if len(filters.MealTypes) > 0 && !intersects(recipe.MealTypes, filters.MealTypes) {
		return false
	}

	// dietary restrictions: the recipe must satisfy all of them
	if len(filters.DietaryRestrictions) > 0 && !containsAll(recipe.DietaryRestrictions, filters.DietaryRestrictions) {
		return false
	}

	return true
}

func usesExpired(matched []models.IngredientMatch, available []models.AvailableIngredient) bool {
	for _, m := range matched {
		if a, ok := resolve(m, available); ok && a.IsExpired {
			return true
		}
	}
	return false
}

func containsDifficulty(levels []models.Difficulty, d models.Difficulty) bool {
	for _, l := range levels {
		if l == d {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !containsFold(have, w) {
			return false
		}
	}
	return true
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}
