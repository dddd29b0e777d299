package leaflet

// Extractor extracts leaflet records from one listing-page HTML document.
type Extractor interface {
	// Extract locates all item fragments in the page and returns the
	// records that assembled and validated cleanly, in document order.
	// A non-empty shopName overrides per-fragment shop-name detection
	// when the caller already knows which shop the page belongs to.
	//
	// Items that cannot be assembled are skipped, never fatal: a page
	// with no item container yields an empty result and a nil error.
	Extract(html string, shopName string) ([]*Leaflet, error)
}

// ShopLister discovers shops from the site's sidebar menu HTML.
type ShopLister interface {
	// ListShops returns the shops linked from the sidebar, deduplicated
	// by canonical URL. A missing sidebar yields an empty result and a
	// nil error.
	ListShops(html string) ([]Shop, error)
}
