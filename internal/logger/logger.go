package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It discards everything until Init runs.
var Log = zap.NewNop()

// Init builds the logger selected by GOPHERTRACE_LOG ("prod" or "dev").
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("GOPHERTRACE_LOG") == "prod" {
		l, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		l, err = cfg.Build()
	}
	if err != nil {
		// Keep the no-op logger rather than failing startup over logging.
		return
	}
	Log = l
}

// Sync flushes buffered entries. Safe to call on the no-op logger.
func Sync() {
	_ = Log.Sync()
}
