package suggest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/catalog"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/fridge"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/leftovers"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/matching"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/recipes"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/stats"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/validation"
)

const channel int64 = 5

type fixture struct {
	svc     *Service
	fridge  *fridge.Service
	recipes *recipes.Service
	stats   *stats.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cat := catalog.Default()
	f := fixture{
		fridge:  fridge.New(store, cat),
		recipes: recipes.New(store, nil),
		stats:   stats.New(store),
	}
	f.svc = New(f.fridge, f.recipes, f.stats, leftovers.New(matching.New(cat)))
	f.svc.now = func() time.Time { return time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC) }
	return f
}

func TestSuggestUsesStoredPantryAndRecipes(t *testing.T) {
	f := newFixture(t)

	prep, cook := 10, 15
	_, err := f.recipes.Add(channel, models.Recipe{
		Name:        "Grilled Chicken",
		Ingredients: []string{"chicken"},
		Difficulty:  models.DifficultyEasy,
		PrepTime:    &prep,
		CookTime:    &cook,
		Servings:    2,
	})
	require.NoError(t, err)
	require.NoError(t, f.fridge.AddItem(channel, models.PantryItem{Name: "chicken breast", Quantity: 2, Unit: "piece"}))

	result, err := f.svc.Suggest(channel, models.DefaultSuggestionFilters())
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)
	assert.InDelta(t, 94.0, result.Suggestions[0].PriorityScore, 1e-9)

	st, err := f.stats.Get(channel)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Requests)
	assert.Equal(t, 1, st.RecipeSuggestionCounts["Grilled Chicken"])
}

func TestSuggestSeedsEmptyRecipeBook(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.fridge.AddIngredients(channel, []string{"eggs", "rice", "green onion", "soy sauce", "carrot", "peas"}))

	result, err := f.svc.Suggest(channel, models.DefaultSuggestionFilters())
	require.NoError(t, err)
	assert.Greater(t, result.RecipesAnalyzed, 0)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "Fried Rice", result.Suggestions[0].Recipe.Name)
}

func TestSuggestEmptyFridge(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Suggest(channel, models.DefaultSuggestionFilters())
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 0, result.TotalIngredientsConsidered)
}

func TestSuggestRejectsInvalidFilters(t *testing.T) {
	f := newFixture(t)

	filters := models.DefaultSuggestionFilters()
	filters.MaxSuggestions = 0

	_, err := f.svc.Suggest(channel, filters)
	var ve *validation.RequestValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestParseFilters(t *testing.T) {
	defaults := models.DefaultSuggestionFilters()

	f, err := ParseFilters("max=3 min=50% meal=Lunch,dinner diet=vegetarian difficulty=easy,medium prep=20 cook=30min expired=include expiring=off subs=no", defaults)
	require.NoError(t, err)
	assert.Equal(t, 3, f.MaxSuggestions)
	assert.Equal(t, 50.0, f.MinMatchPercentage)
	assert.Equal(t, []string{"lunch", "dinner"}, f.MealTypes)
	assert.Equal(t, []string{"vegetarian"}, f.DietaryRestrictions)
	assert.Equal(t, []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium}, f.DifficultyLevels)
	require.NotNil(t, f.MaxPrepTime)
	require.NotNil(t, f.MaxCookTime)
	assert.Equal(t, 20, *f.MaxPrepTime)
	assert.Equal(t, 30, *f.MaxCookTime)
	assert.False(t, f.ExcludeExpired)
	assert.False(t, f.PrioritizeExpiring)
	assert.False(t, f.IncludeSubstitutes)

	same, err := ParseFilters("  ", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, same)
}

func TestParseFiltersErrors(t *testing.T) {
	defaults := models.DefaultSuggestionFilters()
	for _, args := range []string{"max", "max=", "max=lots", "colour=red", "expired=maybe", "subs=sometimes", "prep=soon"} {
		_, err := ParseFilters(args, defaults)
		assert.Error(t, err, args)
	}
}
