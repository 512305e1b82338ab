package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/mock"
	hbslog "github.com/fwojciec/handbook/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNavigator_Navigate(t *testing.T) {
	t.Parallel()

	t.Run("logs navigated ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got string
		inner := &mock.Navigator{
			NavigateFn: func(_ context.Context, id string) error {
				got = id
				return nil
			},
		}

		nav := hbslog.NewLoggingNavigator(inner, logger)
		err := nav.Navigate(context.Background(), "box")

		require.NoError(t, err)
		assert.Equal(t, "box", got)
		output := buf.String()
		assert.Contains(t, output, "msg=navigate")
		assert.Contains(t, output, "id=box")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and returns errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Navigator{
			NavigateFn: func(_ context.Context, id string) error {
				return handbook.Errorf(handbook.ENOTFOUND, "block %q not found", id)
			},
		}

		nav := hbslog.NewLoggingNavigator(inner, logger)
		err := nav.Navigate(context.Background(), "missing")

		assert.Equal(t, handbook.ENOTFOUND, handbook.ErrorCode(err))
		assert.Contains(t, buf.String(), "not_found")
	})
}
