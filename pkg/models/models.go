package models

import (
	"time"
)

// Fridge represents the pantry of a channel
type Fridge struct {
	ID          string                `json:"id"`
	ChannelID   int64                 `json:"channel_id"`
	Items       map[string]PantryItem `json:"items"`
	LastUpdated time.Time             `json:"last_updated"`
}

// PantryItem represents a single stored ingredient in the fridge
type PantryItem struct {
	Name           string     `json:"name"`
	Category       string     `json:"category,omitempty"`
	Quantity       float64    `json:"quantity,omitempty"`
	Unit           string     `json:"unit,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	AddedAt        time.Time  `json:"added_at"`
}

// Difficulty is the preparation difficulty of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is a stored recipe and the candidate input of the suggestion engine
type Recipe struct {
	ID                  string     `json:"id"`
	ChannelID           int64      `json:"channel_id"`
	Name                string     `json:"name" validate:"required"`
	Cuisine             string     `json:"cuisine,omitempty"`
	Description         string     `json:"description,omitempty"`
	Ingredients         []string   `json:"ingredients"`
	Instructions        []string   `json:"instructions,omitempty"`
	Difficulty          Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	PrepTime            *int       `json:"prep_time,omitempty" validate:"omitempty,min=0"`
	CookTime            *int       `json:"cook_time,omitempty" validate:"omitempty,min=0"`
	Servings            int        `json:"servings" validate:"min=1"`
	MealTypes           []string   `json:"meal_types,omitempty"`
	DietaryRestrictions []string   `json:"dietary_restrictions,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// TotalTime returns prep plus cook time in minutes, missing values count as zero
func (r Recipe) TotalTime() int {
	total := 0
	if r.PrepTime != nil {
		total += *r.PrepTime
	}
	if r.CookTime != nil {
		total += *r.CookTime
	}
	return total
}

// SuggestionStats holds the suggestion counters of a channel
type SuggestionStats struct {
	ChannelID              int64          `json:"channel_id"`
	Requests               int            `json:"requests"`
	IngredientsConsidered  int            `json:"ingredients_considered"`
	RecipesAnalyzed        int            `json:"recipes_analyzed"`
	SuggestionsReturned    int            `json:"suggestions_returned"`
	RecipeSuggestionCounts map[string]int `json:"recipe_suggestion_counts"` // recipe name -> times suggested
	LastRequestAt          time.Time      `json:"last_request_at,omitempty"`
}

// RecipeCount is a recipe name with the number of times it was suggested
type RecipeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
