package slog

import (
	"log/slog"
	"time"

	leaflet "github.com/K-Tina/Leaflet-scraper"
)

// Ensure LoggingExtractor implements leaflet.Extractor.
var _ leaflet.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page result logging.
type LoggingExtractor struct {
	next   leaflet.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next leaflet.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, shopName string) (leaflets []*leaflet.Leaflet, err error) {
	defer func(begin time.Time) {
		openEnded := 0
		for _, l := range leaflets {
			if l.IsOpenEnded() {
				openEnded++
			}
		}
		e.logger.Info("extract",
			"shop", shopName,
			"count", len(leaflets),
			"open_ended", openEnded,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, shopName)
}
