package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/mock"
	hbslog "github.com/fwojciec/handbook/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSearcher_Query(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			QueryFn: func(q string) []handbook.Result {
				return []handbook.Result{{ID: "intro", Title: "Introduction"}}
			},
		}

		searcher := hbslog.NewLoggingSearcher(inner, logger)
		results := searcher.Query("css")

		assert.Equal(t, []handbook.Result{{ID: "intro", Title: "Introduction"}}, results)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "query=css")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("wraps a real index", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		idx := handbook.NewIndex([]handbook.Block{
			{ID: "intro", Heading: "Introduction", Body: "CSS stands for Cascading Style Sheets"},
		})

		searcher := hbslog.NewLoggingSearcher(idx, logger)

		assert.Equal(t, idx.Query("CSS"), searcher.Query("CSS"))
		assert.Empty(t, searcher.Query("   "))
		assert.Contains(t, buf.String(), "count=0")
	})
}
