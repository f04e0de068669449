package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "localhost:6379", AppConfig.RedisAddr)
	assert.Equal(t, "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter", AppConfig.NOAABaseURL)
	assert.Equal(t, 15, AppConfig.VendorHTTPTimeoutSeconds)
	assert.Equal(t, 14, AppConfig.AvailabilityWindowDays)
	assert.Equal(t, 4, AppConfig.HealthSweepConcurrency)
	assert.Equal(t, 30, AppConfig.HealthSweepIntervalMinutes)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("AVAILABILITY_WINDOW_DAYS", "7")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.Equal(t, "production", AppConfig.Env)
	assert.Equal(t, 7, AppConfig.AvailabilityWindowDays)
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	LoadConfig()
	assert.False(t, IsProduction())
}
