package logger

import (
	"fmt"

	"bulk-seeder/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for the configured level and format.
// Debug selects the development config; any other level the production one.
func New(cfg *Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var config zap.Config
	if level == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger carrying the request's ray id, when one was
// assigned by the rayid middleware.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id, ok := c.Locals(rayid.LocalsKey).(string); ok && id != "" {
		return l.With(zap.String("ray_id", id))
	}
	return l
}
