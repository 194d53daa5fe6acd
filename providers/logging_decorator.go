package providers

import (
	"log/slog"
	"time"

	"weatherwidget.app/models"
)

// WeatherLoggerDecorator wraps a WeatherProvider with structured request and
// response logging
type WeatherLoggerDecorator struct {
	wrappedProvider WeatherProvider
	providerName    string
}

func NewWeatherLoggerDecorator(provider WeatherProvider, providerName string) WeatherProvider {
	return &WeatherLoggerDecorator{
		wrappedProvider: provider,
		providerName:    providerName,
	}
}

func (d *WeatherLoggerDecorator) FetchRegion(region string) (*models.WeatherInfo, error) {
	slog.Debug("Fetching weather", "provider", d.providerName, "region", region)
	startTime := time.Now()

	info, err := d.wrappedProvider.FetchRegion(region)
	duration := time.Since(startTime)

	if err != nil {
		slog.Error("Weather fetch failed", "provider", d.providerName, "region", region, "error", err, "duration", duration)
		return nil, err
	}

	slog.Debug("Weather fetch succeeded",
		"provider", d.providerName,
		"region", region,
		"code", info.WeatherCode,
		"icon", info.Icon,
		"duration", duration,
	)
	return info, nil
}
