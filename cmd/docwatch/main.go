package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docwatch"
	"github.com/fwojciec/docwatch/fs"
	"github.com/fwojciec/docwatch/gemini"
	"github.com/fwojciec/docwatch/goquery"
	"github.com/fwojciec/docwatch/htmltomarkdown"
	dochttp "github.com/fwojciec/docwatch/http"
	"github.com/fwojciec/docwatch/monitor"
	"github.com/fwojciec/docwatch/readability"
	"github.com/fwojciec/docwatch/rod"
	docslog "github.com/fwojciec/docwatch/slog"
	"github.com/fwojciec/docwatch/sqlite"
	"github.com/fwojciec/docwatch/trafilatura"
	"google.golang.org/genai"
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

	// Data directory holding snapshot artifacts and reports.
	DataDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceService docwatch.SourceService
	RunLog        docwatch.RunLog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docwatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docwatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCWATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SourceService = sqlite.NewSourceService(m.DB)
	m.RunLog = sqlite.NewRunLog(m.DB)
	deps.DB = m.DB
	deps.Sources = m.SourceService
	deps.Runs = m.RunLog

	// Wire command-specific dependencies based on command
	if cmd == "run" {
		var fetcher docwatch.Fetcher
		if cli.Run.Browser {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = dochttp.NewFetcher()
		}
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
		fetcher = monitor.NewRetryFetcher(fetcher, nil, func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		})
		defer fetcher.Close()

		extractor := docwatch.ExtractorChain{goquery.NewExtractor(), readability.NewExtractor(), trafilatura.NewExtractor()}
		converter := htmltomarkdown.NewConverter()

		var store docwatch.SnapshotStore = fs.NewSnapshotStore(filepath.Join(m.DataDir, "snapshots"))
		store = docslog.NewLoggingStore(store, logger)

		deps.Monitor = &monitor.Monitor{
			Sources:     m.SourceService,
			Feeds:       dochttp.NewFeedService(fetcher),
			Pages:       dochttp.NewPageService(fetcher, extractor, converter),
			Store:       store,
			Runs:        m.RunLog,
			RateLimiter: monitor.NewDomainLimiter(cli.Run.RPS),
			Concurrency: cli.Run.Concurrency,
			Logger:      logger,
		}
		deps.Reports = fs.NewReportWriter(filepath.Join(m.DataDir, "reports"))

		if cli.Run.Report {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Monitor.Reporter = gemini.NewReporter(client)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCWATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docwatch.db"
	}
	dir := filepath.Join(home, ".docwatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docwatch.db")
}

func defaultDataDir() string {
	if dir := os.Getenv("DOCWATCH_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docwatch-data"
	}
	return filepath.Join(home, ".docwatch", "data")
}
