package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	leaflet "github.com/K-Tina/Leaflet-scraper"
)

// CLI defines the command-line interface.
type CLI struct {
	URL         string        `help:"Category page URL listing the shops to scrape." default:"https://www.prospektmaschine.de/hypermarkte/"`
	BaseURL     string        `help:"Base URL for resolving relative links and images." default:"https://www.prospektmaschine.de"`
	Output      string        `help:"Output JSON file path." short:"o" default:"leaflets.json"`
	Timeout     time.Duration `help:"HTTP request timeout." default:"30s"`
	Concurrency int           `help:"Number of shop pages fetched concurrently." default:"3"`
	UserAgent   string        `help:"User-Agent header sent with each request."`
	Config      string        `help:"YAML config file supplying the same settings (explicit flags win)." type:"path"`
	Verbose     bool          `help:"Enable debug logging." short:"v"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   leaflet.Fetcher
	Shops     leaflet.ShopLister
	Extractor leaflet.Extractor
	Exporter  leaflet.Exporter
}

// ScrapeCmd scrapes every shop on the category page and exports the
// collected records.
type ScrapeCmd struct {
	URL         string
	Output      string
	Concurrency int
}
