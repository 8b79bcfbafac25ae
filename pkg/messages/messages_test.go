package messages

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

type stubGenerator struct {
	msg     string
	err     error
	intents []string
}

func (g *stubGenerator) GenerateChatMessage(intent string, _ map[string]interface{}) (string, error) {
	g.intents = append(g.intents, intent)
	return g.msg, g.err
}

func TestGeneratedMessagesFallBack(t *testing.T) {
	assert.Equal(t, welcomeText, New(nil).GenerateWelcomeMessage())

	failing := &stubGenerator{err: errors.New("rate limited")}
	svc := New(failing)
	assert.Contains(t, svc.GenerateErrorMessage("fridge"), "something went wrong")
	assert.Contains(t, svc.GenerateEmptyFridgeMessage(), "fridge is empty")
	assert.Equal(t, []string{"error", "empty_fridge"}, failing.intents)

	ok := &stubGenerator{msg: "Hi there 👋"}
	assert.Equal(t, "Hi there 👋", New(ok).GenerateWelcomeMessage())
	assert.Equal(t, []string{"welcome"}, ok.intents)

	blank := &stubGenerator{}
	assert.Contains(t, New(blank).GenerateNoSuggestionsMessage(4), "Nothing in your recipe book")
	assert.Equal(t, []string{"no_suggestions"}, blank.intents)
}

func TestWelcomeTextListsCommands(t *testing.T) {
	for _, command := range []string{"/add", "/sync_fridge", "/fridge", "/remove", "/expiring", "/leftovers",
		"/recipes", "/add_recipe", "/import_recipe", "/delete_recipe", "/stats"} {
		assert.Contains(t, welcomeText, command)
	}
}

func TestFormatSuggestions(t *testing.T) {
	qty := 2.0
	suggestion := models.LeftoverSuggestion{
		Recipe:           models.Recipe{Name: "Pancakes"},
		MatchPercentage:  66.666,
		PriorityScore:    71.3,
		SuggestionReason: "Good ingredient match, easy to prepare",
	}
	suggestion.MatchedIngredients = []models.IngredientMatch{
		{RequiredIngredient: "eggs", AvailableIngredient: "eggs", MatchType: models.MatchExact, IsMatched: true, QuantityAvailable: &qty},
		{RequiredIngredient: "butter", AvailableIngredient: "margarine", MatchType: models.MatchSubstitute, IsMatched: true},
	}
	suggestion.MissingIngredients = []models.IngredientMatch{{RequiredIngredient: "flour"}}

	result := &models.SuggestionResult{
		Suggestions:                []models.LeftoverSuggestion{suggestion},
		TotalIngredientsConsidered: 3,
		RecipesAnalyzed:            5,
		SuggestionsReturned:        1,
	}

	text := FormatSuggestions(result)
	assert.Contains(t, text, "1 ideas from 3 ingredients (5 recipes checked)")
	assert.Contains(t, text, "1. Pancakes (67% match, score 71.3)")
	assert.Contains(t, text, "✅ eggs, butter (use margarine)")
	assert.Contains(t, text, "🛒 flour")
}

func TestFormatFridge(t *testing.T) {
	today := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	later := today.AddDate(0, 1, 0)

	text := FormatFridge([]models.PantryItem{
		{Name: "milk", Quantity: 1.5, Unit: "l", ExpirationDate: &tomorrow},
		{Name: "eggs", Quantity: 6},
		{Name: "rice", ExpirationDate: &later},
	}, today)

	assert.Contains(t, text, "• milk - 1.5 l (expires tomorrow)")
	assert.Contains(t, text, "• eggs - 6\n")
	assert.Contains(t, text, "• rice")
	assert.NotContains(t, text, "rice (")
}

func TestFormatExpiring(t *testing.T) {
	assert.Contains(t, FormatExpiring(nil), "Nothing in your fridge expires")

	today := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	spinach := models.NewAvailableIngredient("spinach", "", 1, "bag").WithExpiration(today, today)
	text := FormatExpiryReminder([]models.AvailableIngredient{spinach}, nil)
	assert.Contains(t, text, "spinach (expires today)")
}

func TestFormatRecipesAndStats(t *testing.T) {
	prep := 10
	r := models.Recipe{Name: "Toast", Difficulty: models.DifficultyEasy, PrepTime: &prep, Servings: 1,
		Ingredients: []string{"bread"}, Instructions: []string{"Toast the bread"}}

	assert.Contains(t, FormatRecipes(nil), "empty")
	assert.Contains(t, FormatRecipes([]models.Recipe{r}), "• Toast (easy, 10 min)")
	assert.Contains(t, FormatRecipe(r), "1. Toast the bread")

	assert.Contains(t, FormatStats(&models.SuggestionStats{}, nil), "No suggestions yet")
	text := FormatStats(&models.SuggestionStats{Requests: 2, SuggestionsReturned: 3}, []models.RecipeCount{{Name: "Toast", Count: 2}})
	assert.Contains(t, text, "2 requests, 3 suggestions returned")
	assert.Contains(t, text, "1. Toast (2)")
}
