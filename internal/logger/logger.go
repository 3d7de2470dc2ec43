package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. Unknown levels fall back to info.
func Init(level string) {
	config := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level.SetLevel(lvl)
	log, _ = config.Build()
}

func L() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
