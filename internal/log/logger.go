// Package log provides the shared application logger. It is a thin wrapper
// around charmbracelet/log writing structured key-value output to stderr.
package log

import (
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultLogger *charmlog.Logger
	once          sync.Once
)

// Default returns the process-wide logger instance.
func Default() *charmlog.Logger {
	once.Do(func() {
		defaultLogger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.InfoLevel,
		})
	})
	return defaultLogger
}

// SetVerbose lowers the level to debug when enabled.
func SetVerbose(verbose bool) {
	if verbose {
		Default().SetLevel(charmlog.DebugLevel)
	} else {
		Default().SetLevel(charmlog.InfoLevel)
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) { Default().Debug(msg, keyvals...) }

// Info logs an informational message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) { Default().Info(msg, keyvals...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) { Default().Warn(msg, keyvals...) }

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) { Default().Error(msg, keyvals...) }
