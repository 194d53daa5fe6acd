package providers

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "weatherwidget.app/errors"
)

func clockAtMinute(minute int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, minute, 0, 0, time.Local))
}

func TestDemoWeatherProvider_SelectsByMinute(t *testing.T) {
	tests := []struct {
		minute      int
		description string
		temperature float64
		icon        string
	}{
		{0, "Sunny", 22.5, "01d"},
		{1, "Cloudy", 18.3, "03d"},
		{2, "Light rain", 15.8, "10d"},
		{3, "Sunny", 22.5, "01d"},
		{59, "Light rain", 15.8, "10d"},
	}

	for _, tt := range tests {
		provider := NewDemoWeatherProvider(clockAtMinute(tt.minute))
		weather, err := provider.Demo("tokyo")

		require.NoError(t, err)
		assert.Equal(t, tt.description, weather.Description, "minute %d", tt.minute)
		assert.Equal(t, tt.temperature, weather.Temperature, "minute %d", tt.minute)
		assert.Equal(t, tt.icon, weather.Icon, "minute %d", tt.minute)
	}
}

// The selection cycle has period 3: minute m and minute m+3 yield the same record.
func TestDemoWeatherProvider_PeriodThree(t *testing.T) {
	for minute := 0; minute < 57; minute++ {
		a, err := NewDemoWeatherProvider(clockAtMinute(minute)).Demo("tokyo")
		require.NoError(t, err)

		b, err := NewDemoWeatherProvider(clockAtMinute(minute + 3)).Demo("tokyo")
		require.NoError(t, err)

		assert.Equal(t, a, b, "minute %d", minute)
	}
}

func TestDemoWeatherProvider_FukuokaRecords(t *testing.T) {
	provider := NewDemoWeatherProvider(clockAtMinute(0))
	weather, err := provider.Demo("fukuoka")

	require.NoError(t, err)
	assert.Equal(t, "Fukuoka - Sunny", weather.Description)
	assert.Equal(t, 23.5, weather.Temperature)
	assert.Equal(t, 42, weather.Humidity)
}

func TestDemoWeatherProvider_UnknownRegion(t *testing.T) {
	provider := NewDemoWeatherProvider(clockAtMinute(0))
	weather, err := provider.Demo("osaka")

	assert.Error(t, err)
	assert.Nil(t, weather)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}
