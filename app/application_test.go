package app

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	os.Clearenv()
	gin.SetMode(gin.TestMode)

	application, err := NewApplication()

	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, 8080, application.Config().Server.Port)
	assert.Equal(t, 5, application.Config().Scheduler.IntervalMinutes)

	assert.NoError(t, application.Shutdown())
}

func TestConfigDisplayer_MaskString(t *testing.T) {
	cd := NewConfigDisplayer()

	assert.Equal(t, "****", cd.maskString("abc"))
	assert.Equal(t, "sec*********", cd.maskString("secret-value"))
}

func TestConfigDisplayer_IsSensitive(t *testing.T) {
	cd := NewConfigDisplayer()

	assert.True(t, cd.isSensitive("WEATHER_API_KEY"))
	assert.True(t, cd.isSensitive("db_password"))
	assert.False(t, cd.isSensitive("SERVER_PORT"))
}
