package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/handbook"
)

// Ensure LoggingNavigator implements handbook.Navigator.
var _ handbook.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with debug logging.
type LoggingNavigator struct {
	next   handbook.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next handbook.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Navigate delegates to the wrapped navigator and logs the operation.
func (n *LoggingNavigator) Navigate(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("navigate",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Navigate(ctx, id)
}
