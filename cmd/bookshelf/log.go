// Logger construction for the bookshelf CLI.
package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a leveled logger with timestamp formatting. The logger
// writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
