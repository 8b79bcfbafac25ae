// Package suggest connects the leftover engine to the bot's stored pantry,
// recipe book and statistics.
package suggest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/fridge"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/leftovers"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/recipes"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/stats"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/validation"
)

// Service produces leftover suggestions for a channel
type Service struct {
	fridgeService *fridge.Service
	recipeService *recipes.Service
	statsService  *stats.Service
	engine        *leftovers.Engine
	logger        *logger.Logger
	now           func() time.Time
}

// New creates a new suggest service
func New(fridgeService *fridge.Service, recipeService *recipes.Service, statsService *stats.Service, engine *leftovers.Engine) *Service {
	return &Service{
		fridgeService: fridgeService,
		recipeService: recipeService,
		statsService:  statsService,
		engine:        engine,
		logger:        logger.New(""),
		now:           time.Now,
	}
}

// Suggest ranks the channel's recipes against its fridge. An empty recipe
// book is seeded with the starter recipes first.
func (s *Service) Suggest(channelID int64, filters models.SuggestionFilters) (*models.SuggestionResult, error) {
	if err := validation.ValidateStruct(filters); err != nil {
		return nil, err
	}

	available, err := s.fridgeService.AvailableIngredients(channelID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load fridge: %w", err)
	}

	if _, err := s.recipeService.SeedDefaults(channelID); err != nil {
		s.logger.Warn("Failed to seed recipes for channel %d: %v", channelID, err)
	}

	book, err := s.recipeService.List(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	result := s.engine.Suggest(available, book, filters)

	if err := s.statsService.Record(channelID, result); err != nil {
		s.logger.Error("Failed to record suggestion stats for channel %d: %v", channelID, err)
	}

	s.logger.Info("Channel %d: %d suggestions from %d ingredients and %d recipes in %v",
		channelID, result.SuggestionsReturned, result.TotalIngredientsConsidered, result.RecipesAnalyzed, result.ProcessingTime)
	return result, nil
}

// ParseFilters reads space-separated key=value arguments on top of defaults.
// Lists are comma-separated, switches take on/off.
//
//	max=5 min=50 meal=lunch,dinner diet=vegetarian difficulty=easy,medium
//	prep=20 cook=30 expired=include expiring=off subs=off
func ParseFilters(args string, defaults models.SuggestionFilters) (models.SuggestionFilters, error) {
	f := defaults

	for _, arg := range strings.Fields(args) {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		key = strings.ToLower(key)

		var err error
		switch key {
		case "max":
			f.MaxSuggestions, err = strconv.Atoi(value)
		case "min":
			f.MinMatchPercentage, err = strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		case "prep":
			f.MaxPrepTime, err = parseMinutes(value)
		case "cook":
			f.MaxCookTime, err = parseMinutes(value)
		case "meal":
			f.MealTypes = splitList(value)
		case "diet":
			f.DietaryRestrictions = splitList(value)
		case "difficulty":
			f.DifficultyLevels = nil
			for _, d := range splitList(value) {
				f.DifficultyLevels = append(f.DifficultyLevels, models.Difficulty(d))
			}
		case "expired":
			switch strings.ToLower(value) {
			case "include":
				f.ExcludeExpired = false
			case "exclude":
				f.ExcludeExpired = true
			default:
				err = fmt.Errorf("use include or exclude")
			}
		case "expiring":
			f.PrioritizeExpiring, err = parseSwitch(value)
		case "subs":
			f.IncludeSubstitutes, err = parseSwitch(value)
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
		if err != nil {
			return f, fmt.Errorf("invalid %s value %q: %w", key, value, err)
		}
	}

	return f, nil
}

func parseMinutes(value string) (*int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(value, "min"))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("use on or off")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
