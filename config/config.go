package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherwidget.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig contains settings for the JMA forecast API
type WeatherConfig struct {
	BaseURL        string            `envconfig:"WEATHER_API_BASE_URL" default:"https://www.jma.go.jp/bosai/forecast/data/forecast"`
	Regions        map[string]string `envconfig:"WEATHER_REGIONS" default:"tokyo:130000,fukuoka:400000"`
	TimeoutSeconds int               `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
}

// ForecastURL returns the forecast document URL for an area code
func (w WeatherConfig) ForecastURL(areaCode string) string {
	return fmt.Sprintf("%s/%s.json", w.BaseURL, areaCode)
}

// SchedulerConfig contains settings for the periodic notification scheduler
type SchedulerConfig struct {
	IntervalMinutes int `envconfig:"SCHEDULER_INTERVAL_MINUTES" default:"5"`
	CooldownSeconds int `envconfig:"SCHEDULER_COOLDOWN_SECONDS" default:"2"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks weather API configuration
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if len(w.Regions) == 0 {
		return errors.NewConfigurationError("WEATHER_REGIONS cannot be empty", nil)
	}
	for region, areaCode := range w.Regions {
		if region == "" || areaCode == "" {
			return errors.NewConfigurationError("WEATHER_REGIONS entries must be region:areaCode pairs", nil)
		}
	}
	if w.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.IntervalMinutes < 1 {
		return errors.NewConfigurationError("SCHEDULER_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	if s.IntervalMinutes > 60 {
		return errors.NewConfigurationError("SCHEDULER_INTERVAL_MINUTES cannot exceed 60 minutes", nil)
	}
	if s.CooldownSeconds < 0 {
		return errors.NewConfigurationError("SCHEDULER_COOLDOWN_SECONDS cannot be negative", nil)
	}
	return nil
}
