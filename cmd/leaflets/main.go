package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/K-Tina/Leaflet-scraper/fs"
	"github.com/K-Tina/Leaflet-scraper/goquery"
	leafhttp "github.com/K-Tina/Leaflet-scraper/http"
	leafslog "github.com/K-Tina/Leaflet-scraper/slog"
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leaflets"),
		kong.Description("Scrape promotional leaflet listings to a JSON file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		cfg, err := loadConfigFile(cli.Config)
		if err != nil {
			return err
		}
		if err := applyConfigFile(cli, cfg); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcherOpts := []leafhttp.Option{leafhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, leafhttp.WithUserAgent(cli.UserAgent))
	}
	httpFetcher := leafhttp.NewFetcher(fetcherOpts...)
	defer httpFetcher.Close()

	extractor, err := goquery.NewExtractor(cli.BaseURL, logger)
	if err != nil {
		return err
	}

	shops, err := goquery.NewShopLister(cli.BaseURL, logger)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Fetcher:   leafslog.NewLoggingFetcher(httpFetcher, logger),
		Shops:     shops,
		Extractor: leafslog.NewLoggingExtractor(extractor, logger),
		Exporter:  fs.NewExporter(cli.Output),
	}

	cmd := &ScrapeCmd{
		URL:         cli.URL,
		Output:      cli.Output,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}
