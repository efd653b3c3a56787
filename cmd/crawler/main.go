package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/isabelleatkins/crawler/crawl"
	crawlergoquery "github.com/isabelleatkins/crawler/goquery"
	crawlerhttp "github.com/isabelleatkins/crawler/http"
	crawlerslog "github.com/isabelleatkins/crawler/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" required:"" help:"Origin URL to crawl"`
	Concurrency int           `short:"c" default:"100" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"0" help:"Per-fetch timeout (0 disables it)"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crawler"),
		kong.Description("Map a single website by following its internal links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run_id", uuid.NewString())

	var opts []crawlerhttp.Option
	if cli.Timeout > 0 {
		opts = append(opts, crawlerhttp.WithTimeout(cli.Timeout))
	}
	fetcher := crawlerslog.NewLoggingFetcher(crawlerhttp.NewFetcher(opts...), logger)
	defer fetcher.Close()

	// One probing GET before the crawl. A failing or overloaded origin
	// is reported but never aborts the run.
	Probe(ctx, fetcher, cli.URL, stdout)

	c := &crawl.Crawler{
		Fetcher:     fetcher,
		Extractor:   crawlergoquery.NewExtractor(),
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	start := time.Now()
	graph, err := c.Run(ctx, cli.URL)
	if err != nil {
		return err
	}

	for _, page := range graph.URLs() {
		fmt.Fprintln(stdout, page)
		for _, href := range graph[page] {
			fmt.Fprintf(stdout, "  %s\n", href)
		}
	}
	fmt.Fprintf(stdout, "%d pages crawled\n", graph.Len())
	fmt.Fprintf(stdout, "Elapsed: %ds\n", int(time.Since(start).Seconds()))

	return nil
}
