package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
)

// Client represents an OpenAI API client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger.New(""),
	}
}

// RecipeInfo is the structured recipe returned by the model
type RecipeInfo struct {
	Name                string   `json:"name"`
	Cuisine             string   `json:"cuisine"`
	Description         string   `json:"description"`
	Ingredients         []string `json:"ingredients"`
	Instructions        []string `json:"instructions"`
	Difficulty          string   `json:"difficulty"`
	PrepTime            *int     `json:"prep_time"`
	CookTime            *int     `json:"cook_time"`
	Servings            int      `json:"servings"`
	MealTypes           []string `json:"meal_types"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

const recipePrompt = `
You are a cooking expert. Please provide a recipe for the dish "%s".
Return the recipe in the following JSON format:
{
  "name": "Full dish name",
  "cuisine": "Cuisine type",
  "description": "Brief description of the dish",
  "ingredients": ["ingredient1", "ingredient2", ...],
  "instructions": ["step1", "step2", ...],
  "difficulty": "easy" | "medium" | "hard",
  "prep_time": minutes,
  "cook_time": minutes,
  "servings": number,
  "meal_types": ["breakfast" | "lunch" | "dinner" | "snack", ...],
  "dietary_restrictions": ["vegetarian", "vegan", "gluten_free", "dairy_free", ...]
}
List ingredients by plain name only, without quantities.
Only return the JSON, no other text.
`

// GetRecipeInfo asks the model for a structured recipe of a dish
func (c *Client) GetRecipeInfo(dishName string) (*RecipeInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.logger.Info("Requesting recipe for %s", dishName)

	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: "You are a cooking expert who provides accurate information about dishes and recipes.",
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(recipePrompt, dishName),
		},
	}, 0.3)
	if err != nil {
		return nil, err
	}

	info, err := parseRecipeInfo(content)
	if err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, err
	}

	c.logger.Info("Successfully got recipe for dish: %s", info.Name)
	return info, nil
}

// GenerateChatMessage generates a chat message for a specific intent
func (c *Client) GenerateChatMessage(intent string, contextData map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal context: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a friendly cooking assistant bot for a Telegram group that helps people cook with what is left in their fridge.
Generate a short, engaging message for the following intent: "%s".
Use the context provided below to personalize the message. Keep it concise and mobile-friendly.
Add appropriate emojis for fun and readability.

Context:
%s

Return only the message text, no explanations or other text.
`, intent, string(contextJSON))

	c.logger.Info("Generating chat message for intent: %s", intent)

	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}, 0.7)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// ExtractIngredientsFromPhoto extracts ingredients from a photo
func (c *Client) ExtractIngredientsFromPhoto(photoURL string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := `You are a computer vision expert. Look at the image of a fridge or pantry and list all visible food ingredients.
Be thorough and try to identify as many food items as possible.
Return only a JSON array of ingredient names, no other text.
For example: ["eggs", "milk", "tomatoes", "chicken breast"]
`

	c.logger.Info("Extracting ingredients from photo")
	c.logger.Debug("Photo URL (truncated): %s", truncateString(photoURL, 50))

	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt,
		},
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: "What food ingredients do you see in this image? List all of them in a JSON array.",
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: photoURL},
				},
			},
		},
	}, 0.2)
	if err != nil {
		return nil, err
	}

	ingredients, err := parseIngredientList(content)
	if err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)

		// Try to extract ingredients using a more lenient approach
		if extracted := extractIngredientsFromText(content); len(extracted) > 0 {
			c.logger.Info("Extracted %d ingredients using fallback method", len(extracted))
			return extracted, nil
		}
		return nil, err
	}

	c.logger.Info("Successfully extracted %d ingredients from photo", len(ingredients))
	return ingredients, nil
}

// ParseIngredientsFromText extracts ingredients from free-form text
func (c *Client) ParseIngredientsFromText(text string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a cooking assistant. Extract all food ingredients from the following text.
Return only a JSON array of ingredient names, no other text.
For example: ["eggs", "milk", "tomatoes", "chicken breast"]

Text: %s
`, text)

	c.logger.Info("Parsing ingredients from text")
	c.logger.Debug("Text to parse (first 100 chars): %s", truncateString(text, 100))

	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}, 0.2)
	if err != nil {
		return nil, err
	}

	ingredients, err := parseIngredientList(content)
	if err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, err
	}
	return ingredients, nil
}

// complete runs a chat completion and returns the first choice
func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		c.logger.Error("OpenAI API error: %v", err)
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI API")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))
	return content, nil
}

func parseRecipeInfo(content string) (*RecipeInfo, error) {
	var info RecipeInfo
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &info); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	if strings.TrimSpace(info.Name) == "" {
		return nil, fmt.Errorf("OpenAI response has no recipe name")
	}
	if len(info.Ingredients) == 0 {
		return nil, fmt.Errorf("OpenAI response has no ingredients for %s", info.Name)
	}
	info.Difficulty = strings.ToLower(strings.TrimSpace(info.Difficulty))
	return &info, nil
}

func parseIngredientList(content string) ([]string, error) {
	var ingredients []string
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &ingredients); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	out := ingredients[:0]
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			out = append(out, ing)
		}
	}
	return out, nil
}

// Helper functions

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// cleanJSONResponse strips the markdown code fence the model sometimes
// wraps around JSON
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// The first line may carry a language tag like ```json
		if firstLineEnd := strings.Index(s, "\n"); firstLineEnd != -1 {
			s = s[firstLineEnd+1:]
		}
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	return s
}

// extractIngredientsFromText extracts ingredients from text using a simple heuristic.
// This is a fallback when JSON parsing fails.
func extractIngredientsFromText(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '"' || r == '[' || r == ']' || r == '\t'
	})

	var ingredients []string
	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) <= 1 {
			continue
		}
		if word == "null" || word == "true" || word == "false" {
			continue
		}
		// Leading digits are most likely JSON syntax or quantities
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}

		ingredients = append(ingredients, word)
	}

	return ingredients
}
