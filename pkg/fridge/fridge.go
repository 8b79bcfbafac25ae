package fridge

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/catalog"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/normalize"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
)

const keyPrefix = "fridge:"

// DateLayout is the expiration date format accepted in chat
const DateLayout = "2006-01-02"

// Service provides fridge management functionality
type Service struct {
	store   *storage.Store
	catalog *catalog.Catalog
	logger  *logger.Logger
	now     func() time.Time
}

// New creates a new fridge service. The catalog fills in missing item
// categories and may be nil.
func New(store *storage.Store, cat *catalog.Catalog) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		logger:  logger.New(""),
		now:     time.Now,
	}
}

func fridgeKey(channelID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, channelID)
}

// GetFridge retrieves the fridge for a channel, creating an empty one if needed
func (s *Service) GetFridge(channelID int64) (*models.Fridge, error) {
	key := fridgeKey(channelID)

	var fridge models.Fridge
	err := s.store.Get(key, &fridge)
	if err == nil {
		if fridge.Items == nil {
			fridge.Items = make(map[string]models.PantryItem)
		}
		return &fridge, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load fridge: %w", err)
	}

	fridge = models.Fridge{
		ID:          key,
		ChannelID:   channelID,
		Items:       make(map[string]models.PantryItem),
		LastUpdated: s.now(),
	}
	if err := s.store.Set(key, fridge); err != nil {
		return nil, fmt.Errorf("failed to create fridge: %w", err)
	}
	return &fridge, nil
}

// AddItem stores an item in the fridge. Items are keyed by normalized name;
// re-adding an item with the same unit adds up the quantities.
func (s *Service) AddItem(channelID int64, item models.PantryItem) error {
	key := normalize.Ingredient(item.Name)
	if key == "" {
		return fmt.Errorf("invalid ingredient name %q", item.Name)
	}
	item.Name = strings.TrimSpace(item.Name)

	fridge, err := s.GetFridge(channelID)
	if err != nil {
		return err
	}

	now := s.now()
	if existing, ok := fridge.Items[key]; ok {
		item = merge(existing, item)
	} else if item.AddedAt.IsZero() {
		item.AddedAt = now
	}

	if item.Category == "" && s.catalog != nil {
		if cats := s.catalog.CategoriesOf(item.Name); len(cats) > 0 {
			item.Category = cats[0]
		}
	}

	fridge.Items[key] = item
	fridge.LastUpdated = now

	s.logger.Debug("Stored %s in fridge %d", key, channelID)
	return s.store.Set(fridge.ID, fridge)
}

func merge(existing, item models.PantryItem) models.PantryItem {
	merged := existing
	merged.Name = item.Name
	if item.Category != "" {
		merged.Category = item.Category
	}
	switch {
	case item.Quantity > 0 && existing.Quantity > 0 && strings.EqualFold(item.Unit, existing.Unit):
		merged.Quantity = existing.Quantity + item.Quantity
	case item.Quantity > 0:
		merged.Quantity = item.Quantity
		merged.Unit = item.Unit
	}
	if item.ExpirationDate != nil {
		merged.ExpirationDate = item.ExpirationDate
	}
	return merged
}

// AddIngredients adds several ingredients by name in one write
func (s *Service) AddIngredients(channelID int64, names []string) error {
	fridge, err := s.GetFridge(channelID)
	if err != nil {
		return err
	}

	now := s.now()
	for _, name := range names {
		key := normalize.Ingredient(name)
		if key == "" {
			continue
		}
		if _, ok := fridge.Items[key]; ok {
			continue
		}
		item := models.PantryItem{Name: strings.TrimSpace(name), AddedAt: now}
		if s.catalog != nil {
			if cats := s.catalog.CategoriesOf(name); len(cats) > 0 {
				item.Category = cats[0]
			}
		}
		fridge.Items[key] = item
	}
	fridge.LastUpdated = now

	return s.store.Set(fridge.ID, fridge)
}

// RemoveIngredients removes multiple ingredients at once
func (s *Service) RemoveIngredients(channelID int64, names []string) error {
	fridge, err := s.GetFridge(channelID)
	if err != nil {
		return err
	}

	for _, name := range names {
		delete(fridge.Items, normalize.Ingredient(name))
	}
	fridge.LastUpdated = s.now()

	return s.store.Set(fridge.ID, fridge)
}

// ListItems returns the items in the fridge, oldest first
func (s *Service) ListItems(channelID int64) ([]models.PantryItem, error) {
	fridge, err := s.GetFridge(channelID)
	if err != nil {
		return nil, err
	}

	items := make([]models.PantryItem, 0, len(fridge.Items))
	for _, item := range fridge.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// ResetFridge empties the fridge for a channel
func (s *Service) ResetFridge(channelID int64) error {
	key := fridgeKey(channelID)

	fridge := models.Fridge{
		ID:          key,
		ChannelID:   channelID,
		Items:       make(map[string]models.PantryItem),
		LastUpdated: s.now(),
	}

	return s.store.Set(key, fridge)
}

// ChannelIDs returns every channel that has a fridge
func (s *Service) ChannelIDs() ([]int64, error) {
	keys, err := s.store.List(keyPrefix)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(keys))
	for _, key := range keys {
		id, err := strconv.ParseInt(strings.TrimPrefix(key, keyPrefix), 10, 64)
		if err != nil {
			s.logger.Warn("Skipping malformed fridge key %s", key)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AvailableIngredients converts the fridge contents into matcher input.
// Days until expiration are counted in calendar days from today.
func (s *Service) AvailableIngredients(channelID int64, today time.Time) ([]models.AvailableIngredient, error) {
	items, err := s.ListItems(channelID)
	if err != nil {
		return nil, err
	}
	return ToAvailable(items, today), nil
}

// ToAvailable converts pantry items into matcher input
func ToAvailable(items []models.PantryItem, today time.Time) []models.AvailableIngredient {
	available := make([]models.AvailableIngredient, 0, len(items))
	for _, item := range items {
		a := models.NewAvailableIngredient(item.Name, item.Category, item.Quantity, item.Unit)
		if item.ExpirationDate != nil {
			a = a.WithExpiration(*item.ExpirationDate, today)
		}
		available = append(available, a)
	}
	return available
}

// ExpiringSoon returns the ingredients that expire within the next week,
// soonest first
func (s *Service) ExpiringSoon(channelID int64, today time.Time) ([]models.AvailableIngredient, error) {
	available, err := s.AvailableIngredients(channelID, today)
	if err != nil {
		return nil, err
	}

	expiring := make([]models.AvailableIngredient, 0)
	for _, a := range available {
		if a.IsExpiringSoon {
			expiring = append(expiring, a)
		}
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return *expiring[i].DaysUntilExpiration < *expiring[j].DaysUntilExpiration
	})
	return expiring, nil
}

// ParseItem parses "name[, quantity unit][, YYYY-MM-DD]"
func ParseItem(text string) (models.PantryItem, error) {
	parts := strings.Split(text, ",")
	item := models.PantryItem{Name: strings.TrimSpace(parts[0])}
	if item.Name == "" {
		return item, fmt.Errorf("missing ingredient name in %q", text)
	}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if date, err := time.Parse(DateLayout, part); err == nil {
			item.ExpirationDate = &date
			continue
		}

		fields := strings.Fields(part)
		quantity, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || quantity < 0 {
			return item, fmt.Errorf("cannot parse %q as a quantity or a %s date", part, DateLayout)
		}
		item.Quantity = quantity
		item.Unit = strings.Join(fields[1:], " ")
	}

	return item, nil
}
