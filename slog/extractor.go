// Package slog provides logging decorators for handbook services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/handbook"
)

// Ensure LoggingExtractor implements handbook.BlockExtractor.
var _ handbook.BlockExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a BlockExtractor with debug logging.
type LoggingExtractor struct {
	next   handbook.BlockExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next handbook.BlockExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractBlocks delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractBlocks(html string) (blocks []handbook.Block, err error) {
	defer func(begin time.Time) {
		e.logger.Info("block extraction",
			"bytes", len(html),
			"count", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractBlocks(html)
}
