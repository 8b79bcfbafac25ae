package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFreshnessScoreSteps(t *testing.T) {
	tests := []struct {
		days *int
		want float64
	}{
		{nil, 1.0},
		{intPtr(-5), 0.0},
		{intPtr(-1), 0.0},
		{intPtr(0), 0.3},
		{intPtr(3), 0.3},
		{intPtr(4), 0.6},
		{intPtr(7), 0.6},
		{intPtr(8), 0.8},
		{intPtr(14), 0.8},
		{intPtr(15), 1.0},
		{intPtr(365), 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FreshnessScore(tt.days))
	}
}

func TestFreshnessScoreIsMonotonic(t *testing.T) {
	for d := -30; d < 60; d++ {
		lower, higher := d, d+1
		assert.LessOrEqual(t, FreshnessScore(&lower), FreshnessScore(&higher), "days %d", d)
	}
}

func TestExpiryFlags(t *testing.T) {
	base := NewAvailableIngredient("Fresh Tomatoes", "produce", 3, "piece")
	assert.Equal(t, "tomato", base.NormalizedName)
	assert.False(t, base.IsExpired)
	assert.False(t, base.IsExpiringSoon)
	assert.Nil(t, base.DaysUntilExpiration)
	assert.Equal(t, 1.0, base.FreshnessScore)

	for d := -10; d <= 20; d++ {
		a := base.WithDaysUntilExpiration(d)
		assert.Equal(t, d < 0, a.IsExpired, "days %d", d)
		assert.Equal(t, d >= 0 && d <= 7, a.IsExpiringSoon, "days %d", d)
		assert.False(t, a.IsExpired && a.IsExpiringSoon, "flags must be exclusive at %d", d)
	}

	// the receiver is a value, the original stays untouched
	assert.Nil(t, base.DaysUntilExpiration)
}

func TestWithExpirationCountsCalendarDays(t *testing.T) {
	today := time.Date(2026, 10, 15, 22, 30, 0, 0, time.UTC)
	expires := time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)

	a := NewAvailableIngredient("milk", "dairy", 1, "l").WithExpiration(expires, today)
	require.NotNil(t, a.DaysUntilExpiration)
	assert.Equal(t, 2, *a.DaysUntilExpiration)
	assert.True(t, a.IsExpiringSoon)
	assert.Equal(t, 0.3, a.FreshnessScore)

	past := NewAvailableIngredient("milk", "dairy", 1, "l").
		WithExpiration(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), today)
	assert.Equal(t, -1, *past.DaysUntilExpiration)
	assert.True(t, past.IsExpired)
	assert.Equal(t, 0.0, past.FreshnessScore)
}

func TestRecipeTotalTime(t *testing.T) {
	assert.Equal(t, 0, Recipe{}.TotalTime())
	assert.Equal(t, 10, Recipe{PrepTime: intPtr(10)}.TotalTime())
	assert.Equal(t, 25, Recipe{PrepTime: intPtr(10), CookTime: intPtr(15)}.TotalTime())
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyEasy.Valid())
	assert.True(t, DifficultyMedium.Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("extreme").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestScoreBreakdown(t *testing.T) {
	b := ScoreBreakdown{
		MatchPercentage: 50,
		DifficultyBonus: 15,
		TimeBonus:       15,
		FreshnessBonus:  10,
		PopularityBonus: 4,
	}

	assert.InDelta(t, 94.0, b.Total(), 1e-9)
	m := b.Map()
	assert.Len(t, m, 6)
	assert.Equal(t, 0.0, m["expiration_bonus"])
	assert.Equal(t, 4.0, m["popularity_bonus"])
}

func TestDefaultSuggestionFilters(t *testing.T) {
	f := DefaultSuggestionFilters()
	assert.Equal(t, 10, f.MaxSuggestions)
	assert.Equal(t, 30.0, f.MinMatchPercentage)
	assert.True(t, f.ExcludeExpired)
	assert.True(t, f.PrioritizeExpiring)
	assert.True(t, f.IncludeSubstitutes)
}
