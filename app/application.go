package app

import (
	"fmt"
	"log/slog"

	"weatherwidget.app/api"
	"weatherwidget.app/config"
	"weatherwidget.app/notify"
	"weatherwidget.app/providers"
	"weatherwidget.app/scheduler"
	"weatherwidget.app/service"
	"weatherwidget.app/state"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	// The enablement flag is the only shared mutable state: one store
	// instance is handed to both the command layer and the scheduler.
	stateStore := state.NewNotificationStateStore()
	notifier := notify.New()

	weatherService := service.NewWeatherService(
		app.createWeatherProvider(),
		providers.NewDemoWeatherProvider(nil),
	)
	notificationService := service.NewNotificationService(notifier, stateStore, nil)

	app.server = api.NewServer(app.config, weatherService, notificationService)
	app.scheduler = scheduler.NewScheduler(&app.config.Scheduler, stateStore, notifier, nil)

	slog.Info("Services initialized successfully")
	return nil
}

// createWeatherProvider builds the decorated live weather provider
func (app *Application) createWeatherProvider() providers.WeatherProvider {
	var provider providers.WeatherProvider = providers.NewJMAProvider(&app.config.Weather)
	provider = providers.NewWeatherLoggerDecorator(provider, "jma")
	provider = providers.NewInstrumentedProvider(provider)
	return provider
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
