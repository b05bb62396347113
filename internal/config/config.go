package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SteamAPIKey string `mapstructure:"STEAM_API_KEY"`
	Port        string `mapstructure:"PORT"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
// Missing required values are fatal: the service cannot reach the database or
// the Steam API without them.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")

	viper.AutomaticEnv()
	// AutomaticEnv alone does not surface env vars through Unmarshal,
	// so the known keys are bound explicitly.
	for _, key := range []string{"DATABASE_URL", "STEAM_API_KEY", "PORT"} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if AppConfig.SteamAPIKey == "" {
		log.Fatal("STEAM_API_KEY is not set")
	}
}
