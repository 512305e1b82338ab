package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/handbook"
	hbslog "github.com/fwojciec/handbook/slog"
)

// Page is a loaded handbook page with the index built from it.
// The index reflects the file as it was when loaded.
type Page struct {
	Path   string
	Blocks map[string]handbook.Block
	Index  *handbook.Index
}

// LoadPage reads, extracts and indexes the page at path. Markdown pages
// (.md, .markdown) are rendered to HTML first.
func LoadPage(deps *Dependencies, path string) (*Page, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, handbook.Errorf(handbook.ENOTFOUND, "page %s not found", path)
	} else if err != nil {
		return nil, handbook.Errorf(handbook.EINVALID, "failed to read page: %v", err)
	}

	source := string(b)
	if isMarkdown(path) {
		if source, err = deps.Renderer.Render(source); err != nil {
			return nil, err
		}
	}

	blocks, err := deps.Extractor.ExtractBlocks(source)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Path:   path,
		Blocks: make(map[string]handbook.Block, len(blocks)),
		Index:  handbook.NewIndex(blocks),
	}
	for _, block := range blocks {
		page.Blocks[block.ID] = block
	}
	return page, nil
}

// Searcher returns the page's searcher, with logging when enabled.
func (p *Page) Searcher(deps *Dependencies) handbook.Searcher {
	if deps.Logger != nil {
		return hbslog.NewLoggingSearcher(p.Index, deps.Logger)
	}
	return p.Index
}

// Navigator returns the page's navigator, with logging when enabled.
func (p *Page) Navigator(deps *Dependencies) handbook.Navigator {
	var nav handbook.Navigator = &BlockNavigator{
		Page:        p,
		State:       deps.State,
		Preferences: deps.Preferences,
		Converter:   deps.Converter,
		Stdout:      deps.Stdout,
	}
	if deps.Logger != nil {
		nav = hbslog.NewLoggingNavigator(nav, deps.Logger)
	}
	return nav
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
