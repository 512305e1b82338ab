package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/handbook"
)

// Ensure LoggingSearcher implements handbook.Searcher.
var _ handbook.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   handbook.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next handbook.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Query delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Query(q string) (results []handbook.Result) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", q,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Query(q)
}
