package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/catalog"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/config"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/fridge"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/leftovers"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/matching"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/messages"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/openai"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/recipes"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/scheduler"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/state"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/stats"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/suggest"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/telegram"
)

func main() {
	log := logger.Global
	log.Info("Starting leftovers bot...")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if err := logger.Configure(cfg.LoggerConfig()); err != nil {
		log.Error("Failed to configure logger: %v", err)
		os.Exit(1)
	}
	log = logger.Global
	defer log.Sync()

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartGCRoutine(ctx, 10*time.Minute)

	cat, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		log.Error("Failed to load substitute catalog: %v", err)
		os.Exit(1)
	}

	// Without an OpenAI key the bot runs with static copy and plain list parsing
	var (
		generator messages.ChatGenerator
		source    recipes.Source
		extractor ingredientExtractor
	)
	if cfg.HasOpenAI() {
		client := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
		generator, source, extractor = client, client, client
	} else {
		log.Warn("OPENAI_API_KEY not set, LLM features are disabled")
	}

	fridgeService := fridge.New(store, cat)
	recipeService := recipes.New(store, source)
	statsService := stats.New(store)
	engine := leftovers.New(matching.New(cat))
	suggestService := suggest.New(fridgeService, recipeService, statsService, engine)

	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	reminders := scheduler.New(store, bot, fridgeService, suggestService, cfg.SuggestionDefaults(), cfg.ReminderHour)
	reminders.Start()
	defer reminders.Stop()

	app := &app{
		bot:       bot,
		fridge:    fridgeService,
		recipes:   recipeService,
		stats:     statsService,
		suggest:   suggestService,
		messages:  messages.New(generator),
		states:    state.New(),
		extractor: extractor,
		defaults:  cfg.SuggestionDefaults(),
		log:       log,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		bot.Stop()
	}()

	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(app.commandHandlers(), app.callbackHandlers(), app.handleUpdate); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
	log.Info("Bot stopped")
}
