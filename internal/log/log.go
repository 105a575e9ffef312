package log

import (
	"go.uber.org/zap"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set installs a development console logger on stderr. Without verbose only
// warnings and errors are written.
func Set(verbose bool) {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	defaultLogger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// Replace swaps the package logger, returning a func that restores the
// previous one. Tests use it with zaptest loggers.
func Replace(logger *zap.Logger) func() {
	prev := defaultLogger
	defaultLogger = logger
	return func() { defaultLogger = prev }
}

func Flush() {
	_ = defaultLogger.Sync()
}
