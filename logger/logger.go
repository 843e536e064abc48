package logger

import (
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process-wide zap logger. Development mode is opted
// into with APP_ENV=dev.
func InitLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
