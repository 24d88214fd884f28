package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared twin. Both are safe to use
// after InitLogger has run; before that they fall back to no-op loggers so
// package init order never panics.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger configures the global loggers. APP_ENV=production switches to
// JSON output; anything else gets the console encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logging must not take the process down; keep the no-op loggers.
		return
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it via defer in main.
func SyncLogger() {
	_ = Log.Sync()
}
