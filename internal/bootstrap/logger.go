package bootstrap

import (
	"os"
	"strings"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewLogger builds the process logger. APP_ENV=development switches to the
// human-readable development encoder.
func NewLogger() (*zap.Logger, error) {
	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// FxLogger routes fx lifecycle events through zap.
func FxLogger(logger *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: logger.Named("fx")}
}
