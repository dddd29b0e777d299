package goquery

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	"github.com/PuerkitoBio/goquery"
)

// Selectors for the category page's sidebar shop menu.
const (
	sidebarSelector  = "div#sidebar"
	shopLinkSelector = "ul#left-category-shops li a"
)

// Ensure ShopLister implements leaflet.ShopLister at compile time.
var _ leaflet.ShopLister = (*ShopLister)(nil)

// ShopLister discovers shops from the sidebar menu of a category page.
type ShopLister struct {
	base   *url.URL
	logger *slog.Logger
}

// NewShopLister creates a new ShopLister. The base URL is used to resolve
// relative shop links to absolute form.
func NewShopLister(baseURL string, logger *slog.Logger) (*ShopLister, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, leaflet.Errorf(leaflet.EINVALID, "invalid base URL: %v", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ShopLister{base: base, logger: logger}, nil
}

// ListShops returns the shops linked from the sidebar in document order,
// deduplicated by canonical URL (first occurrence wins). A page without a
// sidebar yields an empty result and a nil error.
func (s *ShopLister) ListShops(html string) ([]leaflet.Shop, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leaflet.Errorf(leaflet.EINVALID, "failed to parse HTML: %v", err)
	}

	sidebar := doc.Find(sidebarSelector).First()
	if sidebar.Length() == 0 {
		s.logger.Warn("sidebar not found", "selector", sidebarSelector)
		return nil, nil
	}

	seen := make(map[string]bool)
	var shops []leaflet.Shop
	sidebar.Find(shopLinkSelector).Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())

		href, exists := link.Attr("href")
		if !exists || href == "" {
			s.logger.Warn("shop link without URL", "shop", name)
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			s.logger.Warn("shop link with unparseable URL", "shop", name, "href", href)
			return
		}
		resolved := s.base.ResolveReference(ref).String()

		if seen[resolved] {
			return
		}
		seen[resolved] = true

		shop := leaflet.Shop{Name: name, URL: resolved}
		if err := shop.Validate(); err != nil {
			s.logger.Warn("skipping sidebar entry", "reason", leaflet.ErrorMessage(err))
			return
		}
		shops = append(shops, shop)
	})

	s.logger.Info("shops discovered in sidebar", "count", len(shops))
	return shops, nil
}
