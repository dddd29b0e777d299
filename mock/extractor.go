package mock

import leaflet "github.com/K-Tina/Leaflet-scraper"

var _ leaflet.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of leaflet.Extractor.
type Extractor struct {
	ExtractFn func(html string, shopName string) ([]*leaflet.Leaflet, error)
}

func (e *Extractor) Extract(html string, shopName string) ([]*leaflet.Leaflet, error) {
	return e.ExtractFn(html, shopName)
}

var _ leaflet.ShopLister = (*ShopLister)(nil)

// ShopLister is a mock implementation of leaflet.ShopLister.
type ShopLister struct {
	ListShopsFn func(html string) ([]leaflet.Shop, error)
}

func (s *ShopLister) ListShops(html string) ([]leaflet.Shop, error) {
	return s.ListShopsFn(html)
}
