package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clipmd"
	"github.com/fwojciec/clipmd/batch"
	"github.com/fwojciec/clipmd/clipboard"
	"github.com/fwojciec/clipmd/fs"
	"github.com/fwojciec/clipmd/goquery"
	"github.com/fwojciec/clipmd/htmltomarkdown"
	cliphttp "github.com/fwojciec/clipmd/http"
	"github.com/fwojciec/clipmd/readability"
	"github.com/fwojciec/clipmd/rod"
	clipslog "github.com/fwojciec/clipmd/slog"
	"github.com/fwojciec/clipmd/sqlite"
	"github.com/fwojciec/clipmd/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, clipmd.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db and CLIPMD_DB are unset.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Stdin is read for the "-" source.
	Stdin io.Reader

	// Clipboard overrides the system clipboard when set.
	Clipboard clipmd.Clipboard

	// RetryDelays overrides the fetch retry backoff when set.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
		kong.Name("clipmd"),
		kong.Description("Copy the main content of web pages as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db": m.DBPath},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return clipmd.Errorf(clipmd.EINVALID, "no source specified. Run 'clipmd --help' for usage")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return clipmd.Errorf(clipmd.EINVALID, "%v", err)
	}
	command := kongCtx.Command()

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Clipboard = m.Clipboard
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.New(clipboard.WithFallback(stderr))
	}
	if logger != nil {
		deps.Clipboard = clipslog.NewLoggingClipboard(deps.Clipboard, logger)
	}

	if strings.HasPrefix(command, "history") || cli.Copy.Save {
		if cli.DB != ":memory:" {
			_ = os.MkdirAll(filepath.Dir(cli.DB), 0755)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CLIPMD_DB to use a different database path\n")
			return clipmd.Errorf(clipmd.EINTERNAL, "failed to open database at %q: %v", cli.DB, err)
		}
		defer m.Close()
		deps.Clips = sqlite.NewClipService(m.DB)
	}

	if strings.HasPrefix(command, "copy") {
		fetcher, err := m.newFetcher(&cli.Copy)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return clipmd.Errorf(clipmd.EINTERNAL, "failed to start browser: %v", err)
		}
		defer fetcher.Close()

		extractor, converter := newPipeline(cli.Copy.Engine, cli.Copy.Renderer)

		clipper := &batch.Clipper{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Converter:   converter,
			RateLimiter: batch.NewDomainLimiter(batch.DefaultRequestsPerSecond),
			Concurrency: cli.Copy.Concurrency,
			RetryDelays: m.RetryDelays,
			OnRetry: func(source string, attempt int, err error) {
				fmt.Fprintf(stderr, "  retry %s (attempt %d): %s\n", source, attempt, clipmd.ErrorMessage(err))
			},
		}
		if logger != nil {
			clipper.Fetcher = clipslog.NewLoggingFetcher(clipper.Fetcher, logger)
			clipper.Extractor = clipslog.NewLoggingExtractor(clipper.Extractor, logger)
			clipper.Converter = clipslog.NewLoggingConverter(clipper.Converter, logger)
		}
		deps.Clipper = clipper
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the fetcher for the copy command. The browser is only
// launched when it is requested and some source is a web URL.
func (m *Main) newFetcher(c *CopyCmd) (clipmd.Fetcher, error) {
	files := fs.NewFetcher(fs.WithStdin(m.Stdin))

	var web clipmd.Fetcher = cliphttp.NewFetcher(cliphttp.WithTimeout(c.Timeout))
	if c.Browser && hasURL(c.Sources) {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			return nil, err
		}
		web = f
	}

	return &SourceFetcher{Web: web, Files: files}, nil
}

// newPipeline returns the extractor and converter for the engine and
// renderer names accepted by the copy command.
func newPipeline(engine, renderer string) (clipmd.Extractor, clipmd.Converter) {
	var extractor clipmd.Extractor
	switch engine {
	case EngineReadability:
		extractor = readability.NewExtractor()
	case EngineTrafilatura:
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	if renderer == RendererCommonMark {
		return extractor, htmltomarkdown.NewConverter()
	}
	if engine == EngineSelector {
		return extractor, goquery.NewConverter()
	}
	// Readability and trafilatura already return the article alone.
	return extractor, goquery.NewConverter(goquery.WithoutLocator())
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clipmd.db"
	}
	return filepath.Join(home, ".clipmd", "clipmd.db")
}
