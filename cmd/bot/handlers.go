package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/fridge"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/messages"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/recipes"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/state"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/stats"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/suggest"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/telegram"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/validation"
)

const (
	recipeCallbackPrefix = "recipe:"
	maxRecipeButtons     = 10
)

// ingredientExtractor turns chat text and photos into ingredient names
type ingredientExtractor interface {
	ParseIngredientsFromText(text string) ([]string, error)
	ExtractIngredientsFromPhoto(photoURL string) ([]string, error)
}

type app struct {
	bot       *telegram.Bot
	fridge    *fridge.Service
	recipes   *recipes.Service
	stats     *stats.Service
	suggest   *suggest.Service
	messages  *messages.Service
	states    *state.Manager
	extractor ingredientExtractor
	defaults  models.SuggestionFilters
	log       *logger.Logger
}

func (a *app) commandHandlers() map[string]telegram.CommandHandler {
	return map[string]telegram.CommandHandler{
		"start":         a.handleStart,
		"help":          a.handleStart,
		"fridge":        a.handleFridge,
		"add":           a.handleAdd,
		"remove":        a.handleRemove,
		"sync_fridge":   a.handleSyncFridge,
		"expiring":      a.handleExpiring,
		"recipes":       a.handleRecipes,
		"add_recipe":    a.handleAddRecipe,
		"import_recipe": a.handleImportRecipe,
		"delete_recipe": a.handleDeleteRecipe,
		"leftovers":     a.handleLeftovers,
		"stats":         a.handleStats,
	}
}

func (a *app) callbackHandlers() map[string]telegram.CallbackHandler {
	return map[string]telegram.CallbackHandler{
		recipeCallbackPrefix: a.handleRecipeCallback,
		"done_adding":        a.handleDoneAdding,
		"add_more":           a.handleAddMore,
	}
}

func (a *app) send(chatID int64, text string) {
	if _, err := a.bot.SendMessage(chatID, text); err != nil {
		a.log.Error("Failed to send message to %d: %v", chatID, err)
	}
}

func (a *app) sendError(chatID int64, context string, err error) {
	a.log.Error("Failed to %s for chat %d: %v", context, chatID, err)
	a.send(chatID, a.messages.GenerateErrorMessage(context))
}

func (a *app) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if _, err := a.recipes.SeedDefaults(chatID); err != nil {
		a.log.Warn("Failed to seed recipes for chat %d: %v", chatID, err)
	}
	a.send(chatID, a.messages.GenerateWelcomeMessage())
}

func (a *app) handleFridge(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	items, err := a.fridge.ListItems(chatID)
	if err != nil {
		a.sendError(chatID, "retrieve fridge contents", err)
		return
	}
	if len(items) == 0 {
		a.send(chatID, a.messages.GenerateEmptyFridgeMessage())
		return
	}

	a.send(chatID, messages.FormatFridge(items, time.Now()))
}

func (a *app) handleAdd(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	if args == "" {
		a.states.SetState(chatID, state.StateAddingIngredients)
		a.send(chatID, "📝 Send me ingredients as a list or a photo of your fridge. Use /add name, qty unit, YYYY-MM-DD to include an expiration date.")
		return
	}

	item, err := fridge.ParseItem(args)
	if err != nil {
		a.send(chatID, fmt.Sprintf("😕 %v", err))
		return
	}
	if err := a.fridge.AddItem(chatID, item); err != nil {
		a.sendError(chatID, "add an ingredient", err)
		return
	}

	a.send(chatID, fmt.Sprintf("✅ Added %s to your fridge!", item.Name))
}

func (a *app) handleRemove(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	names := splitIngredients(message.CommandArguments())
	if len(names) == 0 {
		a.send(chatID, "Usage: /remove name[, name...]")
		return
	}

	if err := a.fridge.RemoveIngredients(chatID, names); err != nil {
		a.sendError(chatID, "remove ingredients", err)
		return
	}
	a.send(chatID, fmt.Sprintf("🗑️ Removed %s", strings.Join(names, ", ")))
}

func (a *app) handleSyncFridge(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := a.fridge.ResetFridge(chatID); err != nil {
		a.sendError(chatID, "reset fridge", err)
		return
	}

	a.states.SetState(chatID, state.StateSyncingFridge)
	a.send(chatID, "🧹 Fridge reset! Now, please send me a list of ingredients you have or a photo. You can send multiple messages, and I'll add all the ingredients to your fridge.")
}

func (a *app) handleExpiring(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	expiring, err := a.fridge.ExpiringSoon(chatID, time.Now())
	if err != nil {
		a.sendError(chatID, "check expiring ingredients", err)
		return
	}
	a.send(chatID, messages.FormatExpiring(expiring))
}

func (a *app) handleRecipes(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	book, err := a.recipes.List(chatID)
	if err != nil {
		a.sendError(chatID, "list recipes", err)
		return
	}
	if len(book) == 0 {
		a.send(chatID, messages.FormatRecipes(book))
		return
	}

	buttons := make([][2]string, 0, maxRecipeButtons)
	for _, r := range book {
		if len(buttons) == maxRecipeButtons {
			break
		}
		buttons = append(buttons, [2]string{r.Name, recipeCallbackPrefix + r.ID})
	}
	a.sendWithButtons(chatID, messages.FormatRecipes(book), buttons)
}

func (a *app) handleAddRecipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	parsed, err := recipes.ParseRecipe(message.CommandArguments())
	if err != nil {
		a.send(chatID, fmt.Sprintf("😕 %v\nUsage: /add_recipe name | ingredient, ingredient | easy | prep | cook | servings | meal types | dietary", err))
		return
	}

	recipe, err := a.recipes.Add(chatID, parsed)
	if err != nil {
		a.replyRecipeError(chatID, "save the recipe", err)
		return
	}
	a.send(chatID, fmt.Sprintf("📖 Saved %s with %d ingredients.", recipe.Name, len(recipe.Ingredients)))
}

func (a *app) handleImportRecipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	dish := strings.TrimSpace(message.CommandArguments())
	if dish == "" {
		a.send(chatID, "Usage: /import_recipe dish name")
		return
	}

	a.send(chatID, fmt.Sprintf("🔎 Looking up %s...", dish))
	recipe, err := a.recipes.Import(chatID, dish)
	if err != nil {
		a.replyRecipeError(chatID, "import the recipe", err)
		return
	}
	a.send(chatID, messages.FormatRecipe(*recipe))
}

func (a *app) handleDeleteRecipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	name := strings.TrimSpace(message.CommandArguments())

	recipe, err := a.recipes.FindByName(chatID, name)
	if err != nil {
		a.replyRecipeError(chatID, "find the recipe", err)
		return
	}
	if err := a.recipes.Delete(chatID, recipe.ID); err != nil {
		a.sendError(chatID, "delete the recipe", err)
		return
	}
	a.send(chatID, fmt.Sprintf("🗑️ Deleted %s", recipe.Name))
}

func (a *app) replyRecipeError(chatID int64, context string, err error) {
	var ve *validation.RequestValidationError
	switch {
	case errors.As(err, &ve):
		a.send(chatID, fmt.Sprintf("😕 %v", ve))
	case errors.Is(err, recipes.ErrNotFound):
		a.send(chatID, "😕 I don't know that recipe. See /recipes.")
	default:
		a.sendError(chatID, context, err)
	}
}

func (a *app) handleLeftovers(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	filters, err := suggest.ParseFilters(message.CommandArguments(), a.defaults)
	if err != nil {
		a.send(chatID, fmt.Sprintf("😕 %v", err))
		return
	}

	result, err := a.suggest.Suggest(chatID, filters)
	if err != nil {
		var ve *validation.RequestValidationError
		if errors.As(err, &ve) {
			a.send(chatID, fmt.Sprintf("😕 %v", ve))
			return
		}
		a.sendError(chatID, "suggest recipes", err)
		return
	}

	switch {
	case result.TotalIngredientsConsidered == 0:
		a.send(chatID, a.messages.GenerateEmptyFridgeMessage())
	case len(result.Suggestions) == 0:
		a.send(chatID, a.messages.GenerateNoSuggestionsMessage(result.TotalIngredientsConsidered))
	default:
		buttons := make([][2]string, 0, len(result.Suggestions))
		for _, s := range result.Suggestions {
			buttons = append(buttons, [2]string{"📝 " + s.Recipe.Name, recipeCallbackPrefix + s.Recipe.ID})
		}
		a.sendWithButtons(chatID, messages.FormatSuggestions(result), buttons)
	}
}

func (a *app) handleStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	st, err := a.stats.Get(chatID)
	if err != nil {
		a.sendError(chatID, "load statistics", err)
		return
	}
	top, err := a.stats.TopRecipes(chatID, 5)
	if err != nil {
		a.sendError(chatID, "load statistics", err)
		return
	}
	a.send(chatID, messages.FormatStats(st, top))
}

func (a *app) sendWithButtons(chatID int64, text string, buttons [][2]string) {
	if _, err := a.bot.SendMessageWithKeyboard(chatID, text, telegram.ButtonsKeyboard(buttons)); err != nil {
		a.log.Error("Failed to send message to %d: %v", chatID, err)
	}
}

func (a *app) handleRecipeCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	id := strings.TrimPrefix(callback.Data, recipeCallbackPrefix)

	recipe, err := a.recipes.Get(chatID, id)
	if err != nil {
		a.answer(callback, "That recipe is gone.")
		a.log.Warn("Recipe callback for %s: %v", id, err)
		return
	}
	a.answer(callback, "")
	a.send(chatID, messages.FormatRecipe(*recipe))
}

func (a *app) handleDoneAdding(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	a.states.ClearState(chatID)
	a.answer(callback, "Thanks! Your fridge is now updated.")
	if _, err := a.bot.EditMessage(chatID, callback.Message.MessageID, "✅ Fridge update complete! Use /fridge to see your ingredients or /leftovers to get recipe ideas."); err != nil {
		a.log.Error("Failed to edit message: %v", err)
	}
}

func (a *app) handleAddMore(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	a.answer(callback, "Please send more ingredients!")
	if _, err := a.bot.EditMessage(callback.Message.Chat.ID, callback.Message.MessageID, "Please send more ingredients. I'll add them to your fridge."); err != nil {
		a.log.Error("Failed to edit message: %v", err)
	}
}

func (a *app) answer(callback *tgbotapi.CallbackQuery, text string) {
	if err := a.bot.AnswerCallbackQuery(callback.ID, text); err != nil {
		a.log.Error("Failed to answer callback: %v", err)
	}
}

// handleUpdate receives ingredient lists and photos while a chat is adding
// or syncing its fridge
func (a *app) handleUpdate(update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.IsCommand() {
		return
	}

	chatID := message.Chat.ID
	current := a.states.GetState(chatID)
	if current != state.StateAddingIngredients && current != state.StateSyncingFridge {
		return
	}

	var (
		ingredients []string
		err         error
	)
	switch {
	case len(message.Photo) > 0:
		ingredients, err = a.ingredientsFromPhoto(message.Photo)
	case message.Text != "":
		ingredients, err = a.ingredientsFromText(message.Text)
	default:
		return
	}
	if err != nil {
		a.log.Error("Failed to parse ingredients: %v", err)
		a.send(chatID, "😢 Sorry, I couldn't understand the ingredients. Please try again with a clearer list.")
		return
	}
	if len(ingredients) == 0 {
		a.send(chatID, "I couldn't find any ingredients in your message. Please try again with a list of ingredients.")
		return
	}

	if err := a.fridge.AddIngredients(chatID, ingredients); err != nil {
		a.sendError(chatID, "add ingredients", err)
		return
	}
	// keep the state alive while the user keeps sending
	a.states.SetState(chatID, current)

	a.sendWithButtons(chatID,
		fmt.Sprintf("✅ Added %d ingredients to your fridge: %s\nWould you like to add more ingredients or are you done?", len(ingredients), strings.Join(ingredients, ", ")),
		[][2]string{{"Done adding ingredients", "done_adding"}, {"Add more", "add_more"}})
}

func (a *app) ingredientsFromText(text string) ([]string, error) {
	if a.extractor == nil {
		return splitIngredients(text), nil
	}
	return a.extractor.ParseIngredientsFromText(text)
}

func (a *app) ingredientsFromPhoto(photos []tgbotapi.PhotoSize) ([]string, error) {
	if a.extractor == nil {
		return nil, fmt.Errorf("photo recognition needs an OpenAI key")
	}
	// the last size is the largest
	url, err := a.bot.GetFileURL(photos[len(photos)-1].FileID)
	if err != nil {
		return nil, err
	}
	return a.extractor.ExtractIngredientsFromPhoto(url)
}

// splitIngredients splits a comma or newline separated list
func splitIngredients(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	var out []string
	for _, f := range fields {
		f = strings.TrimLeft(strings.TrimSpace(f), "-•* ")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
