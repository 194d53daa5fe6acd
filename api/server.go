package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherwidget.app/config"
	widgeterr "weatherwidget.app/errors"
	"weatherwidget.app/models"
	"weatherwidget.app/service"
)

// Server represents the HTTP server exposing widget commands to the front-end
type Server struct {
	router              *gin.Engine
	config              *config.Config
	weatherService      service.WeatherServiceInterface
	notificationService service.NotificationServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	config *config.Config,
	weatherService service.WeatherServiceInterface,
	notificationService service.NotificationServiceInterface,
) *Server {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	server := &Server{
		router:              router,
		config:              config,
		weatherService:      weatherService,
		notificationService: notificationService,
	}

	server.setupRoutes()
	return server
}

// requestIDMiddleware tags every response with a request id for correlating
// front-end calls with backend logs
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/time", s.getCurrentTime)
		api.POST("/notifications", s.sendNotification)
		api.GET("/notifications/settings", s.getNotificationState)
		api.PUT("/notifications/settings", s.toggleNotification)
		api.GET("/weather/:region", s.getWeather)
		api.GET("/weather/:region/demo", s.getDemoWeather)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) getCurrentTime(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeResponse{Time: s.notificationService.CurrentTime()})
}

func (s *Server) sendNotification(c *gin.Context) {
	var req models.NotificationRequest

	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, widgeterr.NewValidationError("title and body are required"))
		return
	}

	slog.Debug("Sending ad hoc notification", "title", req.Title)

	if err := s.notificationService.Send(req.Title, req.Body); err != nil {
		slog.Error("Notification error", "error", err, "title", req.Title)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Notification sent"})
}

func (s *Server) toggleNotification(c *gin.Context) {
	var req models.ToggleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, widgeterr.NewValidationError("enabled field is required"))
		return
	}

	if err := s.notificationService.Toggle(*req.Enabled); err != nil {
		slog.Error("Toggle error", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Debug("Notification setting updated", "enabled", *req.Enabled)
	c.JSON(http.StatusOK, models.StateResponse{Enabled: *req.Enabled})
}

func (s *Server) getNotificationState(c *gin.Context) {
	enabled, err := s.notificationService.State()
	if err != nil {
		slog.Error("State read error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StateResponse{Enabled: enabled})
}

func (s *Server) getWeather(c *gin.Context) {
	region := c.Param("region")

	slog.Debug("Getting weather for region", "region", region)
	weather, err := s.weatherService.GetWeather(region)
	if err != nil {
		slog.Error("Weather service error", "error", err, "region", region)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, weather)
}

func (s *Server) getDemoWeather(c *gin.Context) {
	region := c.Param("region")

	weather, err := s.weatherService.GetDemoWeather(region)
	if err != nil {
		slog.Error("Demo weather error", "error", err, "region", region)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, weather)
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *widgeterr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case widgeterr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case widgeterr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case widgeterr.NetworkError:
			statusCode = http.StatusServiceUnavailable
			message = "Weather service unreachable"
		case widgeterr.APIError:
			statusCode = http.StatusBadGateway
			message = "Weather service error"
		case widgeterr.ParseError:
			statusCode = http.StatusBadGateway
			message = "Invalid weather service response"
		case widgeterr.NotificationError:
			statusCode = http.StatusServiceUnavailable
			message = "Unable to send notification"
		case widgeterr.LockError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
