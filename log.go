package flipdeck

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Debug output is off unless a presenter is in
// debug mode or the caller installs its own logger.
var logger = newDefaultLogger()

func newDefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "flipdeck",
		Level:  log.WarnLevel,
	})
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
