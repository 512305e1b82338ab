package handbook_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("keeps short content unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "margin border padding content", handbook.Preview("margin border padding content"))
	})

	t.Run("keeps content of exactly preview length unchanged", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", handbook.PreviewLength)

		assert.Equal(t, content, handbook.Preview(content))
	})

	t.Run("truncates long content with marker", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", handbook.PreviewLength) + "tail"

		preview := handbook.Preview(content)

		assert.Equal(t, strings.Repeat("a", handbook.PreviewLength)+"...", preview)
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("é", handbook.PreviewLength+1)

		preview := handbook.Preview(content)

		assert.Equal(t, strings.Repeat("é", handbook.PreviewLength)+handbook.TruncationMarker, preview)
	})

	t.Run("returns empty string for empty content", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, handbook.Preview(""))
	})
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	r := handbook.Record{ID: "units", Title: "Units", Content: strings.Repeat("rem ", 40)}

	res := handbook.NewResult(r)

	assert.Equal(t, "units", res.ID)
	assert.Equal(t, "Units", res.Title)
	assert.True(t, strings.HasSuffix(res.Preview, handbook.TruncationMarker))
	assert.Len(t, []rune(res.Preview), handbook.PreviewLength+len(handbook.TruncationMarker))
}
