// Package logger provides charmbracelet/log loggers shared by the wordpick packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger on stderr that follows the global log level.
// stdout is left to command output and the IPC stream.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a charm logger with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup configures the default logger for the CLI. Debug mode reports
// timestamps and debug lines, otherwise only warnings and errors are shown.
func Setup(debug bool) {
	log.SetDefault(NewWithConfig(os.Stderr, "", log.WarnLevel, false, false, log.TextFormatter))
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	}
}
