package service

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	"weatherwidget.app/errors"
	"weatherwidget.app/metrics"
	"weatherwidget.app/models"
	"weatherwidget.app/notify"
	"weatherwidget.app/providers"
	"weatherwidget.app/state"
)

const timeFormat = "2006-01-02 15:04:05"

// WeatherService handles weather-related commands
type WeatherService struct {
	provider providers.WeatherProvider
	demo     providers.DemoProvider
}

// NewWeatherService creates a new weather service with the live and demo providers
func NewWeatherService(provider providers.WeatherProvider, demo providers.DemoProvider) *WeatherService {
	return &WeatherService{
		provider: provider,
		demo:     demo,
	}
}

// GetWeather retrieves current weather information for a configured region
func (s *WeatherService) GetWeather(region string) (*models.WeatherInfo, error) {
	if region == "" {
		return nil, errors.NewValidationError("region cannot be empty")
	}

	return s.provider.FetchRegion(region)
}

// GetDemoWeather returns canned weather data for a region without a live fetch
func (s *WeatherService) GetDemoWeather(region string) (*models.WeatherInfo, error) {
	if region == "" {
		return nil, errors.NewValidationError("region cannot be empty")
	}

	return s.demo.Demo(region)
}

// NotificationService handles ad hoc notifications, the enablement flag,
// and the current-time command
type NotificationService struct {
	notifier notify.Notifier
	store    *state.NotificationStateStore
	clock    clockwork.Clock
	metrics  *metrics.NotificationMetrics
}

// NewNotificationService creates a new notification service. Pass a nil
// clock to use the real clock.
func NewNotificationService(notifier notify.Notifier, store *state.NotificationStateStore, clock clockwork.Clock) *NotificationService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &NotificationService{
		notifier: notifier,
		store:    store,
		clock:    clock,
		metrics:  metrics.NewNotificationMetrics("api"),
	}
}

// Send delivers an ad hoc desktop notification. Unlike the scheduler path,
// delivery failures are surfaced to the caller.
func (s *NotificationService) Send(title, body string) error {
	if title == "" {
		return errors.NewValidationError("title cannot be empty")
	}
	if body == "" {
		return errors.NewValidationError("body cannot be empty")
	}

	if err := s.notifier.Send(title, body); err != nil {
		slog.Error("Notification delivery failed", "title", title, "error", err)
		s.metrics.RecordFailure()
		return errors.NewNotificationError("failed to send notification", err)
	}

	s.metrics.RecordSent()
	return nil
}

// Toggle replaces the notification enablement flag
func (s *NotificationService) Toggle(enabled bool) error {
	if err := s.store.Toggle(enabled); err != nil {
		return errors.NewLockError("failed to update notification state")
	}

	slog.Debug("Notification state toggled", "enabled", enabled)
	return nil
}

// State returns the current notification enablement flag
func (s *NotificationService) State() (bool, error) {
	enabled, err := s.store.Enabled()
	if err != nil {
		return false, errors.NewLockError("failed to read notification state")
	}

	return enabled, nil
}

// CurrentTime formats the current local time for the front-end
func (s *NotificationService) CurrentTime() string {
	return s.clock.Now().Format(timeFormat)
}
