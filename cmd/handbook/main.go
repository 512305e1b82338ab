package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/goldmark"
	"github.com/fwojciec/handbook/goquery"
	hbhtml "github.com/fwojciec/handbook/html"
	"github.com/fwojciec/handbook/htmltomarkdown"
	hbslog "github.com/fwojciec/handbook/slog"
	"github.com/fwojciec/handbook/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PreferenceService handbook.PreferenceService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("handbook"),
		kong.Description("Search and read static documentation handbooks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'handbook --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HANDBOOK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PreferenceService = sqlite.NewPreferenceService(m.DB)

	deps.Preferences = m.PreferenceService
	deps.Extractor = goquery.NewExtractor()
	deps.Renderer = goldmark.NewRenderer()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Composer = hbhtml.NewComposer()

	if cli.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Extractor = hbslog.NewLoggingExtractor(deps.Extractor, deps.Logger)
	}

	state, err := loadState(ctx, m.PreferenceService, stderr)
	if err != nil {
		return err
	}
	deps.State = state

	return kongCtx.Run(deps)
}

// loadState restores the session state from stored preferences.
// Unreadable reading progress is reported and replaced by empty progress.
func loadState(ctx context.Context, prefs handbook.PreferenceService, stderr io.Writer) (*handbook.State, error) {
	theme, err := handbook.LoadTheme(ctx, prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	progress, err := handbook.LoadProgress(ctx, prefs)
	if handbook.ErrorCode(err) == handbook.EINVALID {
		fmt.Fprintf(stderr, "warning: %s; starting with empty progress\n", handbook.ErrorMessage(err))
		progress = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load reading progress: %w", err)
	}

	return handbook.NewState(theme, progress), nil
}

func defaultDBPath() string {
	if path := os.Getenv("HANDBOOK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "handbook.db"
	}
	dir := filepath.Join(home, ".handbook")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "handbook.db")
}
