package main

import (
	"fmt"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	"golang.org/x/sync/errgroup"
)

// Run executes the scrape command: discover shops from the category page,
// fetch and extract every shop page, export the collected records.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("fetch category page: %w", err)
	}

	shops, err := deps.Shops.ListShops(html)
	if err != nil {
		return fmt.Errorf("list shops: %w", err)
	}
	if len(shops) == 0 {
		return leaflet.Errorf(leaflet.ENOTFOUND, "no shops found in sidebar menu")
	}

	fmt.Fprintf(deps.Stdout, "Found %d shops\n", len(shops))

	// Fetch and extract shop pages concurrently. Each shop's records land
	// in its own slot so the output keeps sidebar order. A shop that fails
	// to fetch or extract is logged and skipped, same as a broken item
	// inside a page.
	results := make([][]*leaflet.Leaflet, len(shops))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, shop := range shops {
		i, shop := i, shop
		g.Go(func() error {
			page, err := deps.Fetcher.Fetch(gctx, shop.URL)
			if err != nil {
				deps.Logger.Warn("skipping shop", "shop", shop.Name, "err", err)
				return nil
			}
			leaflets, err := deps.Extractor.Extract(page, shop.Name)
			if err != nil {
				deps.Logger.Warn("skipping shop", "shop", shop.Name, "err", err)
				return nil
			}
			results[i] = leaflets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []*leaflet.Leaflet
	shopsWithLeaflets := 0
	openEnded := 0
	for _, leaflets := range results {
		if len(leaflets) > 0 {
			shopsWithLeaflets++
		}
		for _, l := range leaflets {
			if l.IsOpenEnded() {
				openEnded++
			}
		}
		all = append(all, leaflets...)
	}

	if len(all) == 0 {
		return leaflet.Errorf(leaflet.ENOTFOUND, "no leaflets were found")
	}

	if err := deps.Exporter.Export(all); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d leaflets (%d regular, %d open-ended) from %d/%d shops to %s\n",
		len(all), len(all)-openEnded, openEnded, shopsWithLeaflets, len(shops), c.Output)
	return nil
}
