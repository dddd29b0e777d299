package slog_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	"github.com/K-Tina/Leaflet-scraper/mock"
	leafslog "github.com/K-Tina/Leaflet-scraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs counts and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return []*leaflet.Leaflet{
					{ValidTo: leaflet.Until(leaflet.Date{Year: 2026, Month: time.February, Day: 7})},
					{ValidTo: leaflet.OpenEnded()},
				}, nil
			},
		}

		extractor := leafslog.NewLoggingExtractor(inner, logger)
		leaflets, err := extractor.Extract("<html></html>", "Kaufland")

		require.NoError(t, err)
		assert.Len(t, leaflets, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "shop=Kaufland")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "open_ended=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return nil, leaflet.Errorf(leaflet.EINVALID, "failed to parse HTML")
			},
		}

		extractor := leafslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", "Kaufland")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "failed to parse HTML")
	})
}
