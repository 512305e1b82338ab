package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/handbook"
	main "github.com/fwojciec/handbook/cmd/handbook"
	"github.com/fwojciec/handbook/goldmark"
	"github.com/fwojciec/handbook/goquery"
	hbhtml "github.com/fwojciec/handbook/html"
	"github.com/fwojciec/handbook/htmltomarkdown"
	"github.com/fwojciec/handbook/mock"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><body>
<div class="content-section" id="intro"><h2>Intro</h2><p>Learn the basics of CSS.</p></div>
<div class="content-section" id="box"><h2>Box Model</h2><p>Margins and padding.</p></div>
</body></html>`

const testMarkdown = `# Selectors

Type and class selectors.

## Flexbox

Flexible box layout.
`

// writePage writes content to a file named name in a temporary directory
// and returns its path.
func writePage(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newDeps returns dependencies backed by the real parsers and in-memory
// preferences.
func newDeps(prefs *mock.MemoryPreferences) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:         context.Background(),
		Stdout:      stdout,
		Stderr:      stderr,
		State:       handbook.NewState(handbook.DefaultTheme, nil),
		Preferences: prefs,
		Extractor:   goquery.NewExtractor(),
		Renderer:    goldmark.NewRenderer(),
		Converter:   htmltomarkdown.NewConverter(),
		Composer:    hbhtml.NewComposer(),
	}, stdout, stderr
}
