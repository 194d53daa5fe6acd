// Package models defines data structures used throughout the application
package models

// WeatherInfo represents normalized weather data for one region.
// Instances are value objects: produced fresh on every fetch, never cached.
type WeatherInfo struct {
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	WeatherCode string  `json:"weather_code"`
	Humidity    int     `json:"humidity"`
	Icon        string  `json:"icon"`
}

// NotificationRequest represents data required to send an ad hoc notification
type NotificationRequest struct {
	Title string `json:"title" form:"title" binding:"required"`
	Body  string `json:"body" form:"body" binding:"required"`
}

// ToggleRequest represents a change to the periodic notification setting.
// Enabled is a pointer so that binding can distinguish false from absent.
type ToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// StateResponse represents the current periodic notification setting
type StateResponse struct {
	Enabled bool `json:"enabled"`
}

// TimeResponse represents the current local time as formatted text
type TimeResponse struct {
	Time string `json:"time"`
}

// MessageResponse represents a simple success message for API responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
