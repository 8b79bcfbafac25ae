package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
)

func result(names ...string) *models.SuggestionResult {
	r := &models.SuggestionResult{
		TotalIngredientsConsidered: 4,
		RecipesAnalyzed:            6,
		SuggestionsReturned:        len(names),
	}
	for _, n := range names {
		r.Suggestions = append(r.Suggestions, models.LeftoverSuggestion{Recipe: models.Recipe{Name: n}})
	}
	return r
}

func TestRecordAndTopRecipes(t *testing.T) {
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	svc := New(store)

	empty, err := svc.Get(1)
	require.NoError(t, err)
	assert.Zero(t, empty.Requests)
	assert.NotNil(t, empty.RecipeSuggestionCounts)

	require.NoError(t, svc.Record(1, result("Soup", "Salad")))
	require.NoError(t, svc.Record(1, result("Soup", "Omelette")))
	require.NoError(t, svc.Record(1, result()))
	require.NoError(t, svc.Record(2, result("Pie")))

	stats, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Requests)
	assert.Equal(t, 12, stats.IngredientsConsidered)
	assert.Equal(t, 18, stats.RecipesAnalyzed)
	assert.Equal(t, 4, stats.SuggestionsReturned)
	assert.False(t, stats.LastRequestAt.IsZero())

	top, err := svc.TopRecipes(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeCount{{Name: "Soup", Count: 2}, {Name: "Omelette", Count: 1}}, top)

	other, err := svc.TopRecipes(2, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeCount{{Name: "Pie", Count: 1}}, other)
}

func TestConcurrentRecordsAreNotLost(t *testing.T) {
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	svc := New(store)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Record(7, result("Soup")))
		}()
	}
	wg.Wait()

	stats, err := svc.Get(7)
	require.NoError(t, err)
	assert.Equal(t, workers, stats.Requests)
	assert.Equal(t, workers, stats.RecipeSuggestionCounts["Soup"])
}
