package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	MongoDatabase     string `mapstructure:"MONGO_DATABASE"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisPreviewDB   int    `mapstructure:"REDIS_PREVIEW_DB"`
	RedisWarmQueueDB int    `mapstructure:"REDIS_WARM_QUEUE_DB"`

	// Availability preview cache and warm worker.
	PreviewCacheTTLSeconds  int `mapstructure:"PREVIEW_CACHE_TTL_SECONDS"`
	WarmIntervalMinutes     int `mapstructure:"WARM_INTERVAL_MINUTES"`
	WarmServiceDurationMins int `mapstructure:"WARM_SERVICE_DURATION_MINS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "glamora")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_PREVIEW_DB", 0)
	viper.SetDefault("REDIS_WARM_QUEUE_DB", 1)
	viper.SetDefault("PREVIEW_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("WARM_INTERVAL_MINUTES", 15)
	viper.SetDefault("WARM_SERVICE_DURATION_MINS", 60)

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
