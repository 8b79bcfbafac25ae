// Package recipes keeps the per-channel recipe book the suggestion engine
// ranks. Recipes are stored in badger under recipe:<channel>:<id>.
package recipes

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/openai"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/validation"
)

// ErrNotFound is returned when a recipe does not exist
var ErrNotFound = errors.New("recipe not found")

// Source provides structured recipes for a dish name
type Source interface {
	GetRecipeInfo(dishName string) (*openai.RecipeInfo, error)
}

// Service provides recipe book functionality
type Service struct {
	store  *storage.Store
	source Source
	logger *logger.Logger
}

// New creates a new recipe service. source may be nil, which disables Import.
func New(store *storage.Store, source Source) *Service {
	return &Service{
		store:  store,
		source: source,
		logger: logger.New(""),
	}
}

func channelPrefix(channelID int64) string {
	return fmt.Sprintf("recipe:%d:", channelID)
}

func recipeKey(channelID int64, id string) string {
	return channelPrefix(channelID) + id
}

// Add validates and stores a recipe, assigning it an ID
func (s *Service) Add(channelID int64, recipe models.Recipe) (*models.Recipe, error) {
	recipe.Name = strings.TrimSpace(recipe.Name)
	recipe.Difficulty = models.Difficulty(strings.ToLower(string(recipe.Difficulty)))
	if err := validation.ValidateStruct(recipe); err != nil {
		return nil, err
	}
	if len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("recipe %s has no ingredients", recipe.Name)
	}

	recipe.ID = uuid.NewString()
	recipe.ChannelID = channelID
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now()
	}

	if err := s.store.Set(recipeKey(channelID, recipe.ID), recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	s.logger.Info("Added recipe %s (%s) to channel %d", recipe.Name, recipe.ID, channelID)
	return &recipe, nil
}

// Get retrieves a recipe by ID
func (s *Service) Get(channelID int64, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.store.Get(recipeKey(channelID, id), &recipe); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// List returns all recipes of a channel sorted by name
func (s *Service) List(channelID int64) ([]models.Recipe, error) {
	keys, err := s.store.List(channelPrefix(channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(keys))
	for _, key := range keys {
		var recipe models.Recipe
		if err := s.store.Get(key, &recipe); err != nil {
			s.logger.Error("Failed to get recipe %s: %v", key, err)
			continue
		}
		recipes = append(recipes, recipe)
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return strings.ToLower(recipes[i].Name) < strings.ToLower(recipes[j].Name)
	})
	return recipes, nil
}

// FindByName returns the first recipe whose name matches, ignoring case
func (s *Service) FindByName(channelID int64, name string) (*models.Recipe, error) {
	recipes, err := s.List(channelID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for i := range recipes {
		if strings.EqualFold(recipes[i].Name, name) {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Delete removes a recipe by ID
func (s *Service) Delete(channelID int64, id string) error {
	if _, err := s.Get(channelID, id); err != nil {
		return err
	}
	if err := s.store.Delete(recipeKey(channelID, id)); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.logger.Info("Deleted recipe %s from channel %d", id, channelID)
	return nil
}

// Import asks the recipe source for a dish and stores the result
func (s *Service) Import(channelID int64, dishName string) (*models.Recipe, error) {
	if s.source == nil {
		return nil, fmt.Errorf("recipe import is not configured")
	}

	info, err := s.source.GetRecipeInfo(dishName)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe for %s: %w", dishName, err)
	}

	return s.Add(channelID, FromInfo(info))
}

// SeedDefaults stores the starter recipes when the channel has none yet.
// It returns the number of recipes added.
func (s *Service) SeedDefaults(channelID int64) (int, error) {
	keys, err := s.store.List(channelPrefix(channelID))
	if err != nil {
		return 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	if len(keys) > 0 {
		return 0, nil
	}

	added := 0
	for _, recipe := range starterRecipes() {
		if _, err := s.Add(channelID, recipe); err != nil {
			s.logger.Error("Failed to seed recipe %s: %v", recipe.Name, err)
			continue
		}
		added++
	}
	s.logger.Info("Seeded %d starter recipes for channel %d", added, channelID)
	return added, nil
}

// FromInfo converts a model-provided recipe into a stored one
func FromInfo(info *openai.RecipeInfo) models.Recipe {
	recipe := models.Recipe{
		Name:                info.Name,
		Cuisine:             info.Cuisine,
		Description:         info.Description,
		Ingredients:         info.Ingredients,
		Instructions:        info.Instructions,
		Difficulty:          models.Difficulty(info.Difficulty),
		PrepTime:            info.PrepTime,
		CookTime:            info.CookTime,
		Servings:            info.Servings,
		MealTypes:           lowerAll(info.MealTypes),
		DietaryRestrictions: lowerAll(info.DietaryRestrictions),
	}
	if !recipe.Difficulty.Valid() {
		recipe.Difficulty = models.DifficultyMedium
	}
	if recipe.Servings < 1 {
		recipe.Servings = 2
	}
	return recipe
}

// ParseRecipe parses the chat format
//
//	name | ingredient, ingredient | difficulty | prep | cook | servings | meal types | dietary
//
// Only the name and ingredients are required. Difficulty defaults to medium
// and servings to 2; blank times stay unknown.
func ParseRecipe(text string) (models.Recipe, error) {
	fields := strings.Split(text, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	recipe := models.Recipe{
		Name:       field(0),
		Difficulty: models.DifficultyMedium,
		Servings:   2,
	}
	if recipe.Name == "" {
		return recipe, fmt.Errorf("missing recipe name")
	}

	recipe.Ingredients = splitList(field(1))
	if len(recipe.Ingredients) == 0 {
		return recipe, fmt.Errorf("recipe %s has no ingredients", recipe.Name)
	}

	if d := field(2); d != "" {
		recipe.Difficulty = models.Difficulty(strings.ToLower(d))
		if !recipe.Difficulty.Valid() {
			return recipe, fmt.Errorf("unknown difficulty %q, use easy, medium or hard", d)
		}
	}

	var err error
	if recipe.PrepTime, err = parseMinutes("prep time", field(3)); err != nil {
		return recipe, err
	}
	if recipe.CookTime, err = parseMinutes("cook time", field(4)); err != nil {
		return recipe, err
	}

	if sv := field(5); sv != "" {
		n, err := strconv.Atoi(sv)
		if err != nil || n < 1 {
			return recipe, fmt.Errorf("invalid servings %q", sv)
		}
		recipe.Servings = n
	}

	recipe.MealTypes = lowerAll(splitList(field(6)))
	recipe.DietaryRestrictions = lowerAll(splitList(field(7)))
	return recipe, nil
}

func parseMinutes(what, s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "min")))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid %s %q", what, s)
	}
	return &n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func lowerAll(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
