package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/bloom"
	"github.com/fwojciec/llmstxt/gemini"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/fwojciec/llmstxt/htmltomarkdown"
	llmshttp "github.com/fwojciec/llmstxt/http"
	"github.com/fwojciec/llmstxt/jina"
	"github.com/fwojciec/llmstxt/ratelimit"
	llmsslog "github.com/fwojciec/llmstxt/slog"
	"github.com/fwojciec/llmstxt/trafilatura"
)

// defaultRPS paces probes against a single domain.
const defaultRPS = 2.0

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
	// Model overrides the default Gemini model. Set before calling Run().
	Model string

	// Pipeline built by Run(), exposed for end-to-end testing.
	Pipeline *llmstxt.Pipeline
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Model: os.Getenv("LLMSTXT_MODEL"),
	}
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
		kong.Name("llmstxt"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmstxt --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.Pipeline, err = m.buildPipeline(ctx, logger)
	if err != nil {
		return err
	}
	defer m.Pipeline.Fetcher.Close()
	deps.Pipeline = m.Pipeline

	return kongCtx.Run(deps)
}

// buildPipeline wires the documentation pipeline from the environment.
// With GEMINI_API_KEY set the model-backed link extractor, ranker,
// classifier, and excerpter are used; without it the pipeline degrades to
// heuristic link extraction and manifest-order ranking. JINA_READER_KEY
// authenticates the content-cleaning proxy when present.
func (m *Main) buildPipeline(ctx context.Context, logger *slog.Logger) (*llmstxt.Pipeline, error) {
	fetcher := llmsslog.NewLoggingFetcher(llmshttp.NewFetcher(), logger)
	limiter := ratelimit.NewDomainLimiter(defaultRPS)

	var readerOpts []jina.Option
	if key := os.Getenv("JINA_READER_KEY"); key != "" {
		readerOpts = append(readerOpts, jina.WithAPIKey(key))
	}
	reader := llmsslog.NewLoggingReader(jina.NewReader(readerOpts...), logger)

	p := &llmstxt.Pipeline{
		Fetcher: fetcher,
		Locator: &llmstxt.Locator{
			Fetcher: fetcher,
			Limiter: limiter,
		},
		// A fresh filter per invocation keeps tool calls independent when
		// the pipeline is long-lived (serve mode).
		NewVisited: func() llmstxt.VisitedFilter { return bloom.NewFilter() },
		Reader:     reader,
		Cleaner:    trafilatura.NewExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Sitemaps:   llmshttp.NewSitemapSource(nil),
		Limiter:    limiter,
		Logger:     logger,
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, using heuristic link extraction and manifest-order ranking")
		p.Extractor = goquery.NewExtractor()
		p.Ranker = llmstxt.NewManifestRanker()
		return p, nil
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	client := gemini.NewClient(genaiClient, m.Model)
	p.Extractor = gemini.NewExtractor(client)
	p.Ranker = gemini.NewRanker(client)
	p.Classifier = gemini.NewClassifier(client)
	p.Excerpter = gemini.NewExcerpter(client)
	return p, nil
}
