package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	main "github.com/K-Tina/Leaflet-scraper/cmd/leaflets"
	"github.com/K-Tina/Leaflet-scraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(shop string) *leaflet.Leaflet {
	return &leaflet.Leaflet{
		Title:        "Angebote",
		ThumbnailURL: "https://www.example.de/img/a.jpg",
		ShopName:     shop,
		ValidFrom:    leaflet.Date{Year: 2026, Month: time.February, Day: 2},
		ValidTo:      leaflet.OpenEnded(),
		CapturedAt:   time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testDeps(stdout io.Writer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: io.Discard,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scrapes every shop and exports in sidebar order", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := testDeps(&stdout)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>" + url + "</html>", nil
			},
		}
		deps.Shops = &mock.ShopLister{
			ListShopsFn: func(html string) ([]leaflet.Shop, error) {
				return []leaflet.Shop{
					{Name: "Kaufland", URL: "https://example.de/kaufland/"},
					{Name: "Lidl", URL: "https://example.de/lidl/"},
				}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return []*leaflet.Leaflet{record(shopName)}, nil
			},
		}
		var exported []*leaflet.Leaflet
		deps.Exporter = &mock.Exporter{
			ExportFn: func(leaflets []*leaflet.Leaflet) error {
				exported = leaflets
				return nil
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Output: "out.json", Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, exported, 2)
		assert.Equal(t, "Kaufland", exported[0].ShopName)
		assert.Equal(t, "Lidl", exported[1].ShopName)
		assert.Contains(t, stdout.String(), "Found 2 shops")
		assert.Contains(t, stdout.String(), "Saved 2 leaflets")
	})

	t.Run("a failing shop page is skipped, not fatal", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := testDeps(&stdout)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.de/kaufland/" {
					return "", errors.New("boom")
				}
				return "<html></html>", nil
			},
		}
		deps.Shops = &mock.ShopLister{
			ListShopsFn: func(html string) ([]leaflet.Shop, error) {
				return []leaflet.Shop{
					{Name: "Kaufland", URL: "https://example.de/kaufland/"},
					{Name: "Lidl", URL: "https://example.de/lidl/"},
				}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return []*leaflet.Leaflet{record(shopName)}, nil
			},
		}
		var exported []*leaflet.Leaflet
		deps.Exporter = &mock.Exporter{
			ExportFn: func(leaflets []*leaflet.Leaflet) error {
				exported = leaflets
				return nil
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Output: "out.json", Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, exported, 1)
		assert.Equal(t, "Lidl", exported[0].ShopName)
	})

	t.Run("fails when the category page cannot be fetched", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(io.Discard)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("unreachable")
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Concurrency: 1}
		err := cmd.Run(deps)

		assert.Error(t, err)
	})

	t.Run("fails when no shops are discovered", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(io.Discard)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		deps.Shops = &mock.ShopLister{
			ListShopsFn: func(html string) ([]leaflet.Shop, error) {
				return nil, nil
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, leaflet.ENOTFOUND, leaflet.ErrorCode(err))
	})

	t.Run("fails when every shop yields zero leaflets", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(io.Discard)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		deps.Shops = &mock.ShopLister{
			ListShopsFn: func(html string) ([]leaflet.Shop, error) {
				return []leaflet.Shop{{Name: "Kaufland", URL: "https://example.de/kaufland/"}}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return nil, nil
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, leaflet.ENOTFOUND, leaflet.ErrorCode(err))
	})

	t.Run("export failure is fatal", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(io.Discard)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		deps.Shops = &mock.ShopLister{
			ListShopsFn: func(html string) ([]leaflet.Shop, error) {
				return []leaflet.Shop{{Name: "Kaufland", URL: "https://example.de/kaufland/"}}, nil
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, shopName string) ([]*leaflet.Leaflet, error) {
				return []*leaflet.Leaflet{record(shopName)}, nil
			},
		}
		deps.Exporter = &mock.Exporter{
			ExportFn: func(leaflets []*leaflet.Leaflet) error {
				return errors.New("disk full")
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://example.de/hypermarkte/", Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
