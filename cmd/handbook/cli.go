package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/handbook"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger is set when --debug is given; nil disables operation logging.
	Logger *slog.Logger

	State       *handbook.State
	Preferences handbook.PreferenceService
	Extractor   handbook.BlockExtractor
	Renderer    handbook.Renderer
	Converter   handbook.Converter
	Composer    handbook.PreviewComposer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log operations to stderr"`

	Index    IndexCmd    `cmd:"" help:"List the searchable blocks of a page"`
	Search   SearchCmd   `cmd:"" help:"Search a page"`
	Show     ShowCmd     `cmd:"" help:"Show a block as Markdown and mark it read"`
	Progress ProgressCmd `cmd:"" help:"Show reading progress for a page"`
	Theme    ThemeCmd    `cmd:"" help:"Show or change the theme"`
	Preview  PreviewCmd  `cmd:"" help:"Compose a live preview document"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Page string `arg:"" help:"Page file (HTML or Markdown)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Page  string `arg:"" help:"Page file (HTML or Markdown)"`
	Query string `arg:"" help:"Text to search for"`
	Pick  int    `short:"p" help:"Open the Nth result"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Page string `arg:"" help:"Page file (HTML or Markdown)"`
	ID   string `arg:"" help:"Block ID"`
}

// ProgressCmd is the "progress" subcommand.
type ProgressCmd struct {
	Page  string `arg:"" help:"Page file (HTML or Markdown)"`
	Reset bool   `help:"Forget all read blocks"`
}

// ThemeCmd is the "theme" subcommand.
type ThemeCmd struct {
	Action string `arg:"" optional:"" help:"toggle, light or dark (omit to show the current theme)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	HTML  string `name:"html" type:"path" help:"File with the HTML fragment"`
	CSS   string `name:"css" type:"path" help:"File with the stylesheet"`
	Frame bool   `help:"Wrap the document in a sandboxed iframe element"`
}
