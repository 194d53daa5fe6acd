// Package scheduler implements the periodic notification loop
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"weatherwidget.app/config"
	"weatherwidget.app/metrics"
	"weatherwidget.app/notify"
	"weatherwidget.app/state"
)

const (
	timeFormat        = "2006-01-02 15:04:05"
	notificationTitle = "Current time (5-minute mark)"
)

// Scheduler fires a desktop notification on every interval-minute wall-clock
// boundary while notifications are enabled. It runs on a dedicated goroutine
// for the lifetime of the process and cycles through waiting, checking the
// enablement flag, firing, and a short cooldown.
type Scheduler struct {
	config   *config.SchedulerConfig
	store    *state.NotificationStateStore
	notifier notify.Notifier
	clock    clockwork.Clock
	metrics  *metrics.NotificationMetrics
	stopCh   chan struct{}
}

// NewScheduler creates a new notification scheduler. Pass a nil clock to use
// the real clock; tests inject a fake one.
func NewScheduler(
	config *config.SchedulerConfig,
	store *state.NotificationStateStore,
	notifier notify.Notifier,
	clock clockwork.Clock,
) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Scheduler{
		config:   config,
		store:    store,
		notifier: notifier,
		clock:    clock,
		metrics:  metrics.NewNotificationMetrics("scheduler"),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the notification loop on a dedicated goroutine
func (s *Scheduler) Start() {
	slog.Info("Starting notification scheduler", "intervalMinutes", s.config.IntervalMinutes)
	go s.run()
}

// Stop terminates the loop at its next wakeup
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

func (s *Scheduler) run() {
	cooldown := time.Duration(s.config.CooldownSeconds) * time.Second

	for {
		wait := waitDuration(s.clock.Now(), s.config.IntervalMinutes)

		select {
		case <-s.clock.After(wait):
		case <-s.stopCh:
			return
		}

		s.fireIfEnabled()

		// Cooldown keeps scheduling jitter from re-triggering within the
		// same boundary.
		select {
		case <-s.clock.After(cooldown):
		case <-s.stopCh:
			return
		}
	}
}

// fireIfEnabled sends the boundary notification when the flag is enabled and
// the wakeup still lands on a boundary minute. Being disabled or waking off
// the boundary is not an error condition.
func (s *Scheduler) fireIfEnabled() {
	enabled, err := s.store.Enabled()
	if err != nil || !enabled {
		s.metrics.RecordSkip()
		return
	}

	// Re-read the clock after the sleep; the wall clock may have drifted.
	now := s.clock.Now()
	if now.Minute()%s.config.IntervalMinutes != 0 {
		s.metrics.RecordSkip()
		return
	}

	body := fmt.Sprintf("The time is now %s", now.Format(timeFormat))
	if err := s.notifier.Send(notificationTitle, body); err != nil {
		// Delivery failures never crash the loop.
		slog.Warn("Failed to send scheduled notification", "error", err)
		s.metrics.RecordFailure()
		return
	}

	slog.Debug("Sent boundary notification", "time", now.Format(timeFormat))
	s.metrics.RecordSent()
}

// waitDuration computes the sleep until the next interval-minute boundary.
// An instant already on a boundary computes to zero, and the result is
// clamped to a minimum of one second so the loop never spins.
func waitDuration(now time.Time, intervalMinutes int) time.Duration {
	minutesToNext := intervalMinutes - now.Minute()%intervalMinutes
	second := now.Second()

	waitMillis := 0
	if !(minutesToNext == intervalMinutes && second == 0) {
		waitMillis = (minutesToNext*60 - second) * 1000
	}

	if waitMillis < 1000 {
		waitMillis = 1000
	}
	return time.Duration(waitMillis) * time.Millisecond
}
