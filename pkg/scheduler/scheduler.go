package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/colin477/floating-kraken-dash-sub000/pkg/fridge"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/logger"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/messages"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/models"
	"github.com/colin477/floating-kraken-dash-sub000/pkg/storage"
)

// Sender delivers a text message to a chat
type Sender interface {
	SendText(chatID int64, text string) error
}

// Suggester produces suggestions for a channel
type Suggester interface {
	Suggest(channelID int64, filters models.SuggestionFilters) (*models.SuggestionResult, error)
}

// reminderState records the last day a channel was reminded
type reminderState struct {
	ChannelID int64  `json:"channel_id"`
	LastDate  string `json:"last_date"`
}

// Service runs the daily expiry reminder
type Service struct {
	store         *storage.Store
	sender        Sender
	fridgeService *fridge.Service
	suggester     Suggester
	filters       models.SuggestionFilters
	hour          int
	logger        *logger.Logger
	stopChan      chan struct{}
	now           func() time.Time
}

// New creates a new scheduler service. Reminders go out at the given local
// hour; a negative hour disables them.
func New(
	store *storage.Store,
	sender Sender,
	fridgeService *fridge.Service,
	suggester Suggester,
	filters models.SuggestionFilters,
	hour int,
) *Service {
	return &Service{
		store:         store,
		sender:        sender,
		fridgeService: fridgeService,
		suggester:     suggester,
		filters:       filters,
		hour:          hour,
		logger:        logger.New("scheduler"),
		stopChan:      make(chan struct{}),
		now:           time.Now,
	}
}

// Start starts the scheduler
func (s *Service) Start() {
	if s.hour < 0 {
		s.logger.Info("Expiry reminders disabled")
		return
	}
	s.logger.Info("Starting expiry reminders at %02d:00", s.hour)
	go s.run()
}

// Stop stops the scheduler
func (s *Service) Stop() {
	s.logger.Info("Stopping expiry reminders")
	close(s.stopChan)
}

func (s *Service) run() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.stopChan:
			return
		}
	}
}

// Tick reminds every channel not yet reminded today, once the reminder hour
// has come. It returns the number of reminders sent.
func (s *Service) Tick() int {
	now := s.now()
	if s.hour < 0 || now.Hour() < s.hour {
		return 0
	}

	channelIDs, err := s.fridgeService.ChannelIDs()
	if err != nil {
		s.logger.Error("Failed to list channels: %v", err)
		return 0
	}

	today := now.Format(fridge.DateLayout)
	sent := 0
	for _, channelID := range channelIDs {
		done, err := s.remindedOn(channelID, today)
		if err != nil {
			s.logger.Error("Failed to read reminder state for channel %d: %v", channelID, err)
			continue
		}
		if done {
			continue
		}

		ok, err := s.RemindChannel(channelID, now)
		if err != nil {
			s.logger.Error("Failed to remind channel %d: %v", channelID, err)
			continue
		}
		if ok {
			sent++
		}

		if err := s.store.Set(reminderKey(channelID), reminderState{ChannelID: channelID, LastDate: today}); err != nil {
			s.logger.Error("Failed to save reminder state for channel %d: %v", channelID, err)
		}
	}
	return sent
}

// RemindChannel sends the expiry reminder if anything in the channel's
// fridge expires soon. It reports whether a message was sent.
func (s *Service) RemindChannel(channelID int64, now time.Time) (bool, error) {
	expiring, err := s.fridgeService.ExpiringSoon(channelID, now)
	if err != nil {
		return false, err
	}
	if len(expiring) == 0 {
		return false, nil
	}

	filters := s.filters
	filters.PrioritizeExpiring = true
	filters.ExcludeExpired = true

	result, err := s.suggester.Suggest(channelID, filters)
	if err != nil {
		s.logger.Warn("Sending reminder for channel %d without suggestions: %v", channelID, err)
		result = nil
	}

	if err := s.sender.SendText(channelID, messages.FormatExpiryReminder(expiring, result)); err != nil {
		return false, fmt.Errorf("failed to send reminder: %w", err)
	}

	s.logger.Info("Sent expiry reminder to channel %d (%d items)", channelID, len(expiring))
	return true, nil
}

func reminderKey(channelID int64) string {
	return fmt.Sprintf("reminder:%d", channelID)
}

func (s *Service) remindedOn(channelID int64, date string) (bool, error) {
	var state reminderState
	err := s.store.Get(reminderKey(channelID), &state)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return state.LastDate == date, nil
}
