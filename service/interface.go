package service

import "weatherwidget.app/models"

// WeatherServiceInterface defines the weather command operations
type WeatherServiceInterface interface {
	GetWeather(region string) (*models.WeatherInfo, error)
	GetDemoWeather(region string) (*models.WeatherInfo, error)
}

// NotificationServiceInterface defines the notification and time command operations
type NotificationServiceInterface interface {
	Send(title, body string) error
	Toggle(enabled bool) error
	State() (bool, error)
	CurrentTime() string
}
