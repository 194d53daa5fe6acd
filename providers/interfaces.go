package providers

import "weatherwidget.app/models"

// WeatherProvider defines the interface for fetching normalized weather data
type WeatherProvider interface {
	FetchRegion(region string) (*models.WeatherInfo, error)
}

// DemoProvider defines the interface for the canned demo weather source
type DemoProvider interface {
	Demo(region string) (*models.WeatherInfo, error)
}
