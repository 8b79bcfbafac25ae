package stats

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
)

// Service provides statistics functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger

	// mu serializes the read-modify-write in Record
	mu sync.Mutex
}

// New creates a new statistics service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func statsKey(channelID int64) string {
	return fmt.Sprintf("stats:%d", channelID)
}

// Get retrieves the suggestion statistics for a channel. A channel without
// statistics gets zero counters.
func (s *Service) Get(channelID int64) (*models.SuggestionStats, error) {
	var stats models.SuggestionStats
	err := s.store.Get(statsKey(channelID), &stats)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		stats = models.SuggestionStats{ChannelID: channelID}
	default:
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	if stats.RecipeSuggestionCounts == nil {
		stats.RecipeSuggestionCounts = make(map[string]int)
	}
	return &stats, nil
}

// Record adds a suggestion result to the channel counters
func (s *Service) Record(channelID int64, result *models.SuggestionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.Get(channelID)
	if err != nil {
		return err
	}

	stats.Requests++
	stats.IngredientsConsidered += result.TotalIngredientsConsidered
	stats.RecipesAnalyzed += result.RecipesAnalyzed
	stats.SuggestionsReturned += result.SuggestionsReturned
	for _, suggestion := range result.Suggestions {
		stats.RecipeSuggestionCounts[suggestion.Recipe.Name]++
	}
	stats.LastRequestAt = time.Now()

	if err := s.store.Set(statsKey(channelID), stats); err != nil {
		return fmt.Errorf("failed to save statistics: %w", err)
	}
	return nil
}

// TopRecipes returns the most often suggested recipes, most frequent first
func (s *Service) TopRecipes(channelID int64, limit int) ([]models.RecipeCount, error) {
	stats, err := s.Get(channelID)
	if err != nil {
		return nil, err
	}

	counts := make([]models.RecipeCount, 0, len(stats.RecipeSuggestionCounts))
	for name, count := range stats.RecipeSuggestionCounts {
		counts = append(counts, models.RecipeCount{Name: name, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})

	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}
