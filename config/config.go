package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisHealthQueueDB int    `mapstructure:"REDIS_HEALTH_QUEUE_DB"`

	// Upstream endpoints.
	NOAABaseURL string `mapstructure:"NOAA_BASE_URL"`

	// Vendor fetch behavior.
	VendorHTTPTimeoutSeconds int `mapstructure:"VENDOR_HTTP_TIMEOUT_SECONDS"`
	AvailabilityWindowDays   int `mapstructure:"AVAILABILITY_WINDOW_DAYS"`

	// Background sweep behavior.
	HealthSweepConcurrency     int `mapstructure:"HEALTH_SWEEP_CONCURRENCY"`
	BulkCheckConcurrency       int `mapstructure:"BULK_CHECK_CONCURRENCY"`
	HealthSweepIntervalMinutes int `mapstructure:"HEALTH_SWEEP_INTERVAL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_HEALTH_QUEUE_DB", 1)
	viper.SetDefault("NOAA_BASE_URL", "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter")
	viper.SetDefault("VENDOR_HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("AVAILABILITY_WINDOW_DAYS", 14)
	viper.SetDefault("HEALTH_SWEEP_CONCURRENCY", 4)
	viper.SetDefault("BULK_CHECK_CONCURRENCY", 4)
	viper.SetDefault("HEALTH_SWEEP_INTERVAL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
