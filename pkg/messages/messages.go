package messages

import (
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
)

// ChatGenerator writes free-form chat copy for an intent
type ChatGenerator interface {
	GenerateChatMessage(intent string, contextData map[string]interface{}) (string, error)
}

// Service provides message generation functionality. Without a generator
// every message falls back to its static text.
type Service struct {
	generator ChatGenerator
	logger    *logger.Logger
}

// New creates a new message service. generator may be nil.
func New(generator ChatGenerator) *Service {
	return &Service{
		generator: generator,
		logger:    logger.New(""),
	}
}

func (s *Service) generate(intent string, contextData map[string]interface{}, fallback string) string {
	if s.generator == nil {
		return fallback
	}
	msg, err := s.generator.GenerateChatMessage(intent, contextData)
	if err != nil {
		s.logger.Error("Failed to generate %s message: %v", intent, err)
		return fallback
	}
	if msg == "" {
		s.logger.Warn("Empty %s message generated, using fallback", intent)
		return fallback
	}
	return msg
}

// GenerateWelcomeMessage generates a welcome message
func (s *Service) GenerateWelcomeMessage() string {
	return s.generate("welcome", map[string]interface{}{
		"purpose":  "Suggest recipes that use up what is already in the fridge, especially food that expires soon",
		"commands": []string{"/add", "/fridge", "/remove", "/sync_fridge", "/expiring", "/leftovers",
			"/recipes", "/add_recipe", "/import_recipe", "/delete_recipe", "/stats"},
	}, welcomeText)
}

// GenerateEmptyFridgeMessage generates a message for an empty fridge
func (s *Service) GenerateEmptyFridgeMessage() string {
	return s.generate("empty_fridge", map[string]interface{}{},
		"🧊 Your fridge is empty! Add ingredients with /add, /sync_fridge or by sending a photo.")
}

// GenerateNoSuggestionsMessage generates a message for a request without results
func (s *Service) GenerateNoSuggestionsMessage(ingredientCount int) string {
	return s.generate("no_suggestions", map[string]interface{}{
		"ingredients_in_fridge": ingredientCount,
	}, "🤷 Nothing in your recipe book matches the fridge well enough. Try /leftovers min=20 or add recipes with /add_recipe.")
}

// GenerateErrorMessage generates an error message
func (s *Service) GenerateErrorMessage(context string) string {
	return s.generate("error", map[string]interface{}{
		"context": context,
	}, "😢 Sorry, something went wrong. Please try again later.")
}

const welcomeText = `👋 Welcome! I help you cook with what is already in your fridge.

/add name[, qty unit][, YYYY-MM-DD] - add an ingredient
/sync_fridge - replace the fridge contents from a list or a photo
/fridge - show the fridge
/remove name - remove an ingredient
/expiring - what expires this week
/leftovers [max=5 min=50 meal=dinner diet=vegetarian] - recipe ideas
/recipes - your recipe book
/add_recipe name | ingredients | difficulty | prep | cook | servings
/import_recipe dish - look up a recipe
/delete_recipe name - remove a recipe from the book
/stats - suggestion statistics`
