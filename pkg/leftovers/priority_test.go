package leftovers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

func TestTimeBonus(t *testing.T) {
	tests := []struct {
		minutes  int
		expected float64
	}{
		{0, 15},
		{30, 15},
		{31, 10},
		{60, 10},
		{90, 5},
		{91, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, timeBonus(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestPriorityScoreComponents(t *testing.T) {
	r := models.Recipe{
		Name:       "Feast",
		Difficulty: models.DifficultyHard,
		PrepTime:   intPtr(60),
		CookTime:   intPtr(60),
		Servings:   8,
	}

	available := make([]models.AvailableIngredient, 0, 5)
	matched := make([]models.IngredientMatch, 0, 5)
	for _, n := range []string{"a1", "b2", "c3", "d4", "e5"} {
		available = append(available, models.NewAvailableIngredient(n, "", 1, "").WithDaysUntilExpiration(1))
		matched = append(matched, models.IngredientMatch{RequiredIngredient: n, AvailableIngredient: n, IsMatched: true})
	}

	b := PriorityScore(r, 40, matched, available, models.DefaultSuggestionFilters())
	assert.Equal(t, 20.0, b.MatchPercentage)
	assert.Equal(t, 5.0, b.DifficultyBonus)
	assert.Equal(t, 0.0, b.TimeBonus)
	assert.InDelta(t, 3.0, b.FreshnessBonus, 1e-9)
	// five expiring items cap at 20
	assert.Equal(t, 20.0, b.ExpirationBonus)
	// servings*2 caps at 10
	assert.Equal(t, 10.0, b.PopularityBonus)
	assert.InDelta(t, 58.0, b.Total(), 1e-9)
}

func TestPriorityScoreNoMatches(t *testing.T) {
	r := recipe("Nothing", models.DifficultyMedium, "x")
	r.Servings = 1

	b := PriorityScore(r, 0, nil, nil, models.DefaultSuggestionFilters())
	assert.Equal(t, 0.0, b.FreshnessBonus)
	assert.Equal(t, 0.0, b.ExpirationBonus)
	assert.Equal(t, 2.0, b.PopularityBonus)
	assert.Equal(t, 10.0, b.DifficultyBonus)
}
