package providers

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"weatherwidget.app/errors"
	"weatherwidget.app/models"
)

// DemoWeatherProvider serves canned weather records without touching the
// network, for running the widget when no live fetch is desired. Selection
// cycles through three records per region based on the current wall-clock
// minute, so the provider is stateless and deterministic given the clock.
type DemoWeatherProvider struct {
	clock   clockwork.Clock
	records map[string][]models.WeatherInfo
}

// NewDemoWeatherProvider creates a demo provider. Pass nil to use the real
// clock; tests inject a fake for deterministic selection.
func NewDemoWeatherProvider(clock clockwork.Clock) *DemoWeatherProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &DemoWeatherProvider{
		clock: clock,
		records: map[string][]models.WeatherInfo{
			"tokyo": {
				{Description: "Sunny", Temperature: 22.5, WeatherCode: "100", Humidity: 45, Icon: "01d"},
				{Description: "Cloudy", Temperature: 18.3, WeatherCode: "110", Humidity: 65, Icon: "03d"},
				{Description: "Light rain", Temperature: 15.8, WeatherCode: "120", Humidity: 78, Icon: "10d"},
			},
			"fukuoka": {
				{Description: "Fukuoka - Sunny", Temperature: 23.5, WeatherCode: "100", Humidity: 42, Icon: "01d"},
				{Description: "Fukuoka - Cloudy", Temperature: 19.8, WeatherCode: "110", Humidity: 60, Icon: "03d"},
				{Description: "Fukuoka - Light rain", Temperature: 17.2, WeatherCode: "120", Humidity: 75, Icon: "10d"},
			},
		},
	}
}

// Demo returns one of the region's canned records, selected by the current
// minute modulo the number of records
func (p *DemoWeatherProvider) Demo(region string) (*models.WeatherInfo, error) {
	records, ok := p.records[region]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no demo data for region: %s", region))
	}

	index := p.clock.Now().Minute() % len(records)
	record := records[index]
	return &record, nil
}
