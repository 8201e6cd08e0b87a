package config

import "os"

// Config holds all configuration for the storefront applications
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

// StoreConfig holds the paths of the flat-file stores
type StoreConfig struct {
	GamesFile       string `mapstructure:"gamesFile"`
	PurchasesFile   string `mapstructure:"purchasesFile"`
	CurrentUserFile string `mapstructure:"currentUserFile"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("GAMESTORE_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
