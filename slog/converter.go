package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipmd"
)

// Ensure LoggingConverter implements clipmd.Converter.
var _ clipmd.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   clipmd.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next clipmd.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"in", len(html),
			"out", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}

// Ensure LoggingExtractor implements clipmd.Extractor.
var _ clipmd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   clipmd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next clipmd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *clipmd.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var out int
		if result != nil {
			title, out = result.Title, len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"title", title,
			"in", len(html),
			"out", out,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
