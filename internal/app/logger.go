package app

import (
	"github.com/saradorri/gamestore/internal/config"
	"github.com/saradorri/gamestore/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
