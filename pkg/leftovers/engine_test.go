package leftovers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

func intPtr(v int) *int { return &v }

func recipe(name string, difficulty models.Difficulty, ingredients ...string) models.Recipe {
	return models.Recipe{
		Name:        name,
		Ingredients: ingredients,
		Difficulty:  difficulty,
		PrepTime:    intPtr(10),
		CookTime:    intPtr(15),
		Servings:    2,
	}
}

func pantry(names ...string) []models.AvailableIngredient {
	out := make([]models.AvailableIngredient, 0, len(names))
	for _, n := range names {
		out = append(out, models.NewAvailableIngredient(n, "", 1, "piece"))
	}
	return out
}

func TestSuggestChickenBreast(t *testing.T) {
	engine := New(nil)

	available := []models.AvailableIngredient{
		models.NewAvailableIngredient("chicken breast", "", 2, "piece"),
	}
	recipes := []models.Recipe{recipe("Grilled Chicken", models.DifficultyEasy, "chicken")}

	result := engine.Suggest(available, recipes, models.DefaultSuggestionFilters())
	require.Len(t, result.Suggestions, 1)

	s := result.Suggestions[0]
	assert.Equal(t, 100.0, s.MatchPercentage)
	require.Len(t, s.MatchedIngredients, 1)
	assert.Equal(t, models.MatchFuzzy, s.MatchedIngredients[0].MatchType)
	assert.Equal(t, "chicken breast", s.MatchedIngredients[0].AvailableIngredient)
	assert.Empty(t, s.MissingIngredients)

	assert.InDelta(t, 94.0, s.PriorityScore, 1e-9)
	assert.Equal(t, models.ScoreBreakdown{
		MatchPercentage: 50,
		DifficultyBonus: 15,
		TimeBonus:       15,
		FreshnessBonus:  10,
		ExpirationBonus: 0,
		PopularityBonus: 4,
	}, s.ScoreBreakdown)
	assert.Equal(t, 15.0, s.DifficultyBonus)
	assert.Equal(t, 10.0, s.FreshnessBonus)
	assert.Equal(t, 0.0, s.ExpirationUrgency)
	assert.Equal(t, "High ingredient match, easy to prepare", s.SuggestionReason)

	assert.Equal(t, 1, result.TotalIngredientsConsidered)
	assert.Equal(t, 1, result.RecipesAnalyzed)
	assert.Equal(t, 1, result.SuggestionsReturned)
	assert.Equal(t, models.DefaultSuggestionFilters(), result.FiltersApplied)
}

func TestSuggestEmptyInputs(t *testing.T) {
	engine := New(nil)
	filters := models.DefaultSuggestionFilters()

	t.Run("empty pantry", func(t *testing.T) {
		result := engine.Suggest(nil, []models.Recipe{recipe("Toast", models.DifficultyEasy, "bread")}, filters)
		assert.NotNil(t, result.Suggestions)
		assert.Empty(t, result.Suggestions)
		assert.Equal(t, 0, result.TotalIngredientsConsidered)
		assert.Equal(t, 1, result.RecipesAnalyzed)
		assert.Equal(t, 0, result.SuggestionsReturned)
	})

	t.Run("no recipes", func(t *testing.T) {
		result := engine.Suggest(pantry("bread"), nil, filters)
		assert.Empty(t, result.Suggestions)
		assert.Equal(t, 1, result.TotalIngredientsConsidered)
		assert.Equal(t, 0, result.RecipesAnalyzed)
	})

	t.Run("nothing passes", func(t *testing.T) {
		result := engine.Suggest(pantry("bread"), []models.Recipe{recipe("Steak", models.DifficultyHard, "beef", "pepper", "salt")}, filters)
		assert.Empty(t, result.Suggestions)
		assert.Equal(t, 1, result.RecipesAnalyzed)
	})
}

func TestSuggestOrderingAndLimit(t *testing.T) {
	engine := New(nil)
	available := pantry("egg", "butter", "bread")

	recipes := []models.Recipe{
		recipe("Hard Eggs", models.DifficultyHard, "egg", "butter"),
		recipe("Easy Eggs", models.DifficultyEasy, "egg", "butter"),
		recipe("Buttered Toast A", models.DifficultyMedium, "bread", "butter"),
		recipe("Buttered Toast B", models.DifficultyMedium, "bread", "butter"),
	}

	filters := models.DefaultSuggestionFilters()
	result := engine.Suggest(available, recipes, filters)
	require.Len(t, result.Suggestions, 4)

	names := make([]string, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		names = append(names, s.Recipe.Name)
	}
	assert.Equal(t, []string{"Easy Eggs", "Buttered Toast A", "Buttered Toast B", "Hard Eggs"}, names)

	for i := 1; i < len(result.Suggestions); i++ {
		assert.GreaterOrEqual(t, result.Suggestions[i-1].PriorityScore, result.Suggestions[i].PriorityScore)
	}

	filters.MaxSuggestions = 2
	result = engine.Suggest(available, recipes, filters)
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, 2, result.SuggestionsReturned)
	assert.Equal(t, 4, result.RecipesAnalyzed)
	assert.Equal(t, "Easy Eggs", result.Suggestions[0].Recipe.Name)
}

func TestSuggestExpiringIngredients(t *testing.T) {
	engine := New(nil)
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	available := []models.AvailableIngredient{
		models.NewAvailableIngredient("spinach", "vegetable", 1, "bag").WithExpiration(today.AddDate(0, 0, 2), today),
		models.NewAvailableIngredient("cream", "dairy", 1, "cup").WithExpiration(today.AddDate(0, 0, -1), today),
		models.NewAvailableIngredient("pasta", "", 500, "g"),
	}

	spinachPasta := recipe("Spinach Pasta", models.DifficultyMedium, "spinach", "pasta")
	creamPasta := recipe("Cream Pasta", models.DifficultyMedium, "cream", "pasta")

	t.Run("expired ingredients exclude the recipe", func(t *testing.T) {
		result := engine.Suggest(available, []models.Recipe{spinachPasta, creamPasta}, models.DefaultSuggestionFilters())
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, "Spinach Pasta", result.Suggestions[0].Recipe.Name)
	})

	t.Run("expired allowed when not excluded", func(t *testing.T) {
		filters := models.DefaultSuggestionFilters()
		filters.ExcludeExpired = false
		result := engine.Suggest(available, []models.Recipe{spinachPasta, creamPasta}, filters)
		assert.Len(t, result.Suggestions, 2)
	})

	t.Run("expiring bonus", func(t *testing.T) {
		result := engine.Suggest(available, []models.Recipe{spinachPasta}, models.DefaultSuggestionFilters())
		require.Len(t, result.Suggestions, 1)

		s := result.Suggestions[0]
		assert.Equal(t, 5.0, s.ExpirationUrgency)
		// spinach 0.3, pasta 1.0
		assert.InDelta(t, 6.5, s.FreshnessBonus, 1e-9)
		assert.Equal(t, "High ingredient match, uses expiring ingredients", s.SuggestionReason)
	})

	t.Run("no bonus unless prioritized", func(t *testing.T) {
		filters := models.DefaultSuggestionFilters()
		filters.PrioritizeExpiring = false
		result := engine.Suggest(available, []models.Recipe{spinachPasta}, filters)
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, 0.0, result.Suggestions[0].ExpirationUrgency)
	})
}

func TestSuggestSkipsInvalidRecipes(t *testing.T) {
	engine := New(nil)

	broken := recipe("", models.DifficultyEasy, "egg")
	badDifficulty := recipe("Weird Eggs", "extreme", "egg")
	good := recipe("Fried Egg", models.DifficultyEasy, "egg")

	result := engine.Suggest(pantry("eggs"), []models.Recipe{broken, badDifficulty, good}, models.DefaultSuggestionFilters())
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Fried Egg", result.Suggestions[0].Recipe.Name)
	assert.Equal(t, 3, result.RecipesAnalyzed)
}

func TestSuggestionReasons(t *testing.T) {
	engine := New(nil)
	available := pantry("rice", "onion", "garlic")

	filters := models.DefaultSuggestionFilters()
	filters.IncludeSubstitutes = false
	filters.MinMatchPercentage = 20

	tests := []struct {
		name     string
		recipe   models.Recipe
		expected string
	}{
		{
			name:     "good match",
			recipe:   recipe("Fried Rice", models.DifficultyMedium, "rice", "onion", "egg"),
			expected: "Good ingredient match",
		},
		{
			name:     "partial match",
			recipe:   recipe("Risotto", models.DifficultyHard, "rice", "parmesan", "stock", "butter"),
			expected: "Partial ingredient match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Suggest(available, []models.Recipe{tt.recipe}, filters)
			require.Len(t, result.Suggestions, 1)
			assert.Equal(t, tt.expected, result.Suggestions[0].SuggestionReason)
		})
	}
}

func TestSuggestZeroFiltersReturnNothing(t *testing.T) {
	engine := New(nil)

	result := engine.Suggest(pantry("eggs"), []models.Recipe{recipe("Boiled Eggs", models.DifficultyEasy, "eggs")}, models.SuggestionFilters{})
	assert.Empty(t, result.Suggestions)
	assert.Zero(t, result.SuggestionsReturned)

	result = engine.Suggest(pantry("eggs"), []models.Recipe{recipe("Boiled Eggs", models.DifficultyEasy, "eggs")}, models.DefaultSuggestionFilters())
	assert.Len(t, result.Suggestions, 1)
}
