package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"weatherwidget.app/config"
	"weatherwidget.app/errors"
	"weatherwidget.app/models"
)

// The JMA forecast document does not carry humidity; the widget displays a
// fixed default instead.
const defaultHumidity = 50

// forecastDocument mirrors the slice of the JMA forecast payload the widget
// consumes. Everything else in the document is ignored.
type forecastDocument struct {
	TimeSeries []timeSeriesBlock `json:"timeSeries"`
}

type timeSeriesBlock struct {
	Areas []forecastArea `json:"areas"`
}

type forecastArea struct {
	Weathers     []string `json:"weathers"`
	WeatherCodes []string `json:"weatherCodes"`
	Temps        []string `json:"temps"`
}

// JMAProvider implements WeatherProvider against the JMA public forecast API
type JMAProvider struct {
	config *config.WeatherConfig
	client *http.Client
}

// NewJMAProvider creates a new JMA forecast provider
func NewJMAProvider(config *config.WeatherConfig) *JMAProvider {
	return &JMAProvider{
		config: config,
		client: &http.Client{Timeout: time.Duration(config.TimeoutSeconds) * time.Second},
	}
}

// FetchRegion resolves a configured region name to its area code and fetches
// that region's forecast
func (p *JMAProvider) FetchRegion(region string) (*models.WeatherInfo, error) {
	if region == "" {
		return nil, errors.NewValidationError("region cannot be empty")
	}

	areaCode, ok := p.config.Regions[region]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("unknown region: %s", region))
	}

	return p.Fetch(p.config.ForecastURL(areaCode))
}

// Fetch retrieves the forecast document at url and normalizes it into a
// WeatherInfo record
func (p *JMAProvider) Fetch(url string) (*models.WeatherInfo, error) {
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, errors.NewNetworkError("failed to reach forecast API", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			// Ignore close error as it's not critical for the main operation
			_ = closeErr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAPIError(fmt.Sprintf("forecast API returned status code %d", resp.StatusCode))
	}

	var document []forecastDocument
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, errors.NewParseError("failed to decode forecast document", err)
	}

	return normalizeForecast(document)
}

// normalizeForecast extracts description/code/temperature from the first
// area entries of the document's time-series blocks. A document without any
// timeSeries is malformed; missing individual fields inside a well-formed
// document fall back to defaults instead of failing.
func normalizeForecast(document []forecastDocument) (*models.WeatherInfo, error) {
	if len(document) == 0 || len(document[0].TimeSeries) == 0 {
		return nil, errors.NewParseError("forecast document has no timeSeries", nil)
	}

	series := document[0].TimeSeries

	weatherCode := firstAreaValue(series, 0, func(a forecastArea) []string { return a.WeatherCodes }, "")
	description := firstAreaValue(series, 0, func(a forecastArea) []string { return a.Weathers }, "unknown")

	// Temperatures live in the third time-series block as text values.
	temperature := 0.0
	if raw := firstAreaValue(series, 2, func(a forecastArea) []string { return a.Temps }, ""); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			temperature = parsed
		}
	}

	return &models.WeatherInfo{
		Description: description,
		Temperature: temperature,
		WeatherCode: weatherCode,
		Humidity:    defaultHumidity,
		Icon:        IconForCode(weatherCode),
	}, nil
}

// firstAreaValue returns the first entry of the selected field in the first
// area of time-series block idx, or fallback when any level is absent.
func firstAreaValue(series []timeSeriesBlock, idx int, field func(forecastArea) []string, fallback string) string {
	if idx >= len(series) || len(series[idx].Areas) == 0 {
		return fallback
	}
	values := field(series[idx].Areas[0])
	if len(values) == 0 || values[0] == "" {
		return fallback
	}
	return values[0]
}
