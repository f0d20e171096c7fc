package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Call Init before using it.
var Log *zap.Logger

// Init configures the global logger. Safe to call more than once; later
// calls are no-ops so library code and binaries can both call it.
func Init() {
	if Log != nil {
		return
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var err error
	Log, err = config.Build()
	if err != nil {
		// Logging must not take the process down; fall back to a no-op.
		Log = zap.NewNop()
	}
}
