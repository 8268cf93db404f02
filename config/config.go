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

	// Shared secret the chat platform sends with every webhook call.
	// Empty disables the check.
	WebhookToken string `mapstructure:"WEBHOOK_TOKEN"`

	// Gemini API key for the optional natural-language refinement.
	// Empty disables enrichment; the deterministic extractor still runs.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Directory holding rooms.json and reservations.json.
	DataDir string `mapstructure:"DATA_DIR"`

	// Session-store eviction.
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	SessionSweepSpec  string `mapstructure:"SESSION_SWEEP_SPEC"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
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
	viper.SetDefault("WEBHOOK_TOKEN", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_SWEEP_SPEC", "@every 10m")

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
