package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipmd"
)

// Ensure LoggingClipboard implements clipmd.Clipboard.
var _ clipmd.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with logging.
type LoggingClipboard struct {
	next   clipmd.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next clipmd.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the operation.
func (c *LoggingClipboard) WriteText(text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(text)
}
