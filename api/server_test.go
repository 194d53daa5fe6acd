package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/config"
	"weatherwidget.app/errors"
	"weatherwidget.app/models"
)

// MockWeatherService for testing
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) GetWeather(region string) (*models.WeatherInfo, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherInfo), args.Error(1)
}

func (m *MockWeatherService) GetDemoWeather(region string) (*models.WeatherInfo, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherInfo), args.Error(1)
}

// MockNotificationService for testing
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(title, body string) error {
	args := m.Called(title, body)
	return args.Error(0)
}

func (m *MockNotificationService) Toggle(enabled bool) error {
	args := m.Called(enabled)
	return args.Error(0)
}

func (m *MockNotificationService) State() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationService) CurrentTime() string {
	args := m.Called()
	return args.String(0)
}

// TestServerSetup contains all the components needed for testing
type TestServerSetup struct {
	Router           *gin.Engine
	MockWeather      *MockWeatherService
	MockNotification *MockNotificationService
}

func setupTestServer() *TestServerSetup {
	gin.SetMode(gin.TestMode)

	mockWeather := new(MockWeatherService)
	mockNotification := new(MockNotificationService)

	server := NewServer(
		&config.Config{Server: config.ServerConfig{Port: 8080}},
		mockWeather,
		mockNotification,
	)

	return &TestServerSetup{
		Router:           server.GetRouter(),
		MockWeather:      mockWeather,
		MockNotification: mockNotification,
	}
}

func TestGetCurrentTime(t *testing.T) {
	setup := setupTestServer()
	setup.MockNotification.On("CurrentTime").Return("2025-06-01 12:05:00")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/time", nil)
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-01 12:05:00", resp.Time)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSendNotification_Success(t *testing.T) {
	setup := setupTestServer()
	setup.MockNotification.On("Send", "Hello", "World").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/notifications",
		strings.NewReader(`{"title": "Hello", "body": "World"}`))
	req.Header.Set("Content-Type", "application/json")
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	setup.MockNotification.AssertExpectations(t)
}

func TestSendNotification_MissingFields(t *testing.T) {
	setup := setupTestServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/notifications",
		strings.NewReader(`{"title": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	setup.MockNotification.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendNotification_DeliveryFailure(t *testing.T) {
	setup := setupTestServer()
	setup.MockNotification.On("Send", "Hello", "World").
		Return(errors.NewNotificationError("failed to send notification", nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/notifications",
		strings.NewReader(`{"title": "Hello", "body": "World"}`))
	req.Header.Set("Content-Type", "application/json")
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unable to send notification", resp.Error)
}

func TestToggleNotification(t *testing.T) {
	t.Run("EnableSuccess", func(t *testing.T) {
		setup := setupTestServer()
		setup.MockNotification.On("Toggle", true).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/notifications/settings",
			strings.NewReader(`{"enabled": true}`))
		req.Header.Set("Content-Type", "application/json")
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Enabled)
		setup.MockNotification.AssertExpectations(t)
	})

	t.Run("DisableSuccess", func(t *testing.T) {
		setup := setupTestServer()
		setup.MockNotification.On("Toggle", false).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/notifications/settings",
			strings.NewReader(`{"enabled": false}`))
		req.Header.Set("Content-Type", "application/json")
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Enabled)
	})

	t.Run("MissingEnabledField", func(t *testing.T) {
		setup := setupTestServer()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/notifications/settings",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		setup.MockNotification.AssertNotCalled(t, "Toggle", mock.Anything)
	})
}

func TestGetNotificationState(t *testing.T) {
	setup := setupTestServer()
	setup.MockNotification.On("State").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/notifications/settings", nil)
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Enabled)
}

func TestGetWeather(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		setup := setupTestServer()
		expected := &models.WeatherInfo{
			Description: "Partly cloudy",
			Temperature: 22.5,
			WeatherCode: "101",
			Humidity:    50,
			Icon:        "02d",
		}
		setup.MockWeather.On("GetWeather", "tokyo").Return(expected, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/weather/tokyo", nil)
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.WeatherInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, *expected, resp)
	})

	t.Run("UnknownRegion", func(t *testing.T) {
		setup := setupTestServer()
		setup.MockWeather.On("GetWeather", "osaka").
			Return(nil, errors.NewNotFoundError("unknown region: osaka"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/weather/osaka", nil)
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NetworkError", func(t *testing.T) {
		setup := setupTestServer()
		setup.MockWeather.On("GetWeather", "tokyo").
			Return(nil, errors.NewNetworkError("failed to reach forecast API", nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/weather/tokyo", nil)
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Weather service unreachable", resp.Error)
	})

	t.Run("ParseError", func(t *testing.T) {
		setup := setupTestServer()
		setup.MockWeather.On("GetWeather", "tokyo").
			Return(nil, errors.NewParseError("failed to decode forecast document", nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/weather/tokyo", nil)
		setup.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestGetDemoWeather(t *testing.T) {
	setup := setupTestServer()
	expected := &models.WeatherInfo{
		Description: "Fukuoka - Sunny",
		Temperature: 23.5,
		WeatherCode: "100",
		Humidity:    42,
		Icon:        "01d",
	}
	setup.MockWeather.On("GetDemoWeather", "fukuoka").Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/weather/fukuoka/demo", nil)
	setup.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.WeatherInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, *expected, resp)
}
