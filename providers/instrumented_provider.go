package providers

import (
	"time"

	"weatherwidget.app/metrics"
	"weatherwidget.app/models"
)

// InstrumentedProvider wraps a WeatherProvider with Prometheus fetch metrics
type InstrumentedProvider struct {
	provider WeatherProvider
	metrics  *metrics.FetchMetrics
}

func NewInstrumentedProvider(provider WeatherProvider) *InstrumentedProvider {
	return &InstrumentedProvider{
		provider: provider,
		metrics:  metrics.NewFetchMetrics(),
	}
}

func (p *InstrumentedProvider) FetchRegion(region string) (*models.WeatherInfo, error) {
	start := time.Now()
	info, err := p.provider.FetchRegion(region)
	duration := time.Since(start).Seconds()

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	p.metrics.RecordFetch(region, outcome, duration)

	return info, err
}
