package messages

import (
	"fmt"
	"strings"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
)

// FormatSuggestions renders a suggestion result as a numbered list
func FormatSuggestions(result *models.SuggestionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ %d ideas from %d ingredients (%d recipes checked):\n",
		result.SuggestionsReturned, result.TotalIngredientsConsidered, result.RecipesAnalyzed)

	for i, s := range result.Suggestions {
		fmt.Fprintf(&b, "\n%d. %s (%.0f%% match, score %.1f)\n", i+1, s.Recipe.Name, s.MatchPercentage, s.PriorityScore)
		fmt.Fprintf(&b, "   %s\n", s.SuggestionReason)

		if len(s.MatchedIngredients) > 0 {
			b.WriteString("   ✅ " + strings.Join(matchedLabels(s.MatchedIngredients), ", ") + "\n")
		}
		if len(s.MissingIngredients) > 0 {
			b.WriteString("   🛒 " + strings.Join(requiredNames(s.MissingIngredients), ", ") + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func matchedLabels(matches []models.IngredientMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		switch m.MatchType {
		case models.MatchExact:
			out = append(out, m.RequiredIngredient)
		case models.MatchSubstitute:
			out = append(out, fmt.Sprintf("%s (use %s)", m.RequiredIngredient, m.AvailableIngredient))
		default:
			out = append(out, fmt.Sprintf("%s (%s)", m.RequiredIngredient, m.AvailableIngredient))
		}
	}
	return out
}

func requiredNames(matches []models.IngredientMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.RequiredIngredient)
	}
	return out
}

// FormatFridge renders the fridge contents
func FormatFridge(items []models.PantryItem, today time.Time) string {
	var b strings.Builder
	b.WriteString("🧊 Here's what's in your fridge:\n")
	for _, item := range items {
		b.WriteString("\n• " + formatItem(item, today))
	}
	return b.String()
}

func formatItem(item models.PantryItem, today time.Time) string {
	line := item.Name
	if item.Quantity > 0 {
		line += fmt.Sprintf(" - %s %s", formatQuantity(item.Quantity), item.Unit)
		line = strings.TrimRight(line, " ")
	}
	if item.ExpirationDate != nil {
		if label := expiryLabel(models.DaysBetween(today, *item.ExpirationDate)); label != "" {
			line += " " + label
		}
	}
	return line
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%g", q)
}

func expiryLabel(days int) string {
	switch {
	case days < 0:
		return "(expired)"
	case days == 0:
		return "(expires today)"
	case days == 1:
		return "(expires tomorrow)"
	case days <= models.ExpiringSoonDays:
		return fmt.Sprintf("(expires in %d days)", days)
	default:
		return ""
	}
}

// FormatExpiring renders the ingredients that expire soon
func FormatExpiring(expiring []models.AvailableIngredient) string {
	if len(expiring) == 0 {
		return "✨ Nothing in your fridge expires this week."
	}

	var b strings.Builder
	b.WriteString("⏰ Use these soon:\n")
	for _, a := range expiring {
		label := a.Name
		if a.DaysUntilExpiration != nil {
			label += " " + expiryLabel(*a.DaysUntilExpiration)
		}
		b.WriteString("\n• " + label)
	}
	return b.String()
}

// FormatExpiryReminder renders the daily reminder about expiring food
func FormatExpiryReminder(expiring []models.AvailableIngredient, result *models.SuggestionResult) string {
	text := FormatExpiring(expiring)
	if result == nil || len(result.Suggestions) == 0 {
		return text
	}
	return text + "\n\n" + FormatSuggestions(result)
}

// FormatRecipes renders the recipe book
func FormatRecipes(recipes []models.Recipe) string {
	if len(recipes) == 0 {
		return "📖 Your recipe book is empty. Add one with /add_recipe or /import_recipe."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 %d recipes:\n", len(recipes))
	for _, r := range recipes {
		fmt.Fprintf(&b, "\n• %s (%s", r.Name, r.Difficulty)
		if total := r.TotalTime(); total > 0 {
			fmt.Fprintf(&b, ", %d min", total)
		}
		b.WriteString(")")
	}
	return b.String()
}

// FormatRecipe renders a single recipe with instructions
func FormatRecipe(r models.Recipe) string {
	var b strings.Builder
	b.WriteString("📝 " + r.Name)
	if r.Cuisine != "" {
		b.WriteString(" (" + r.Cuisine + ")")
	}
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(r.Description + "\n")
	}

	fmt.Fprintf(&b, "\nDifficulty: %s, serves %d", r.Difficulty, r.Servings)
	if r.PrepTime != nil {
		fmt.Fprintf(&b, ", prep %d min", *r.PrepTime)
	}
	if r.CookTime != nil {
		fmt.Fprintf(&b, ", cook %d min", *r.CookTime)
	}
	b.WriteString("\n\nIngredients:\n")
	for _, ing := range r.Ingredients {
		b.WriteString("• " + ing + "\n")
	}

	if len(r.Instructions) > 0 {
		b.WriteString("\nSteps:\n")
		for i, step := range r.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatStats renders the suggestion statistics of a channel
func FormatStats(stats *models.SuggestionStats, top []models.RecipeCount) string {
	if stats.Requests == 0 {
		return "📊 No suggestions yet. Try /leftovers."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 %d requests, %d suggestions returned\n", stats.Requests, stats.SuggestionsReturned)
	fmt.Fprintf(&b, "Ingredients considered: %d, recipes analyzed: %d\n", stats.IngredientsConsidered, stats.RecipesAnalyzed)

	if len(top) > 0 {
		b.WriteString("\nMost suggested:\n")
		for i, rc := range top {
			fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, rc.Name, rc.Count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
