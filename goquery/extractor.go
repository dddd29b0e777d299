// Package goquery provides CSS-selector based implementations of the
// leaflet extraction interfaces for the markup of the source site.
package goquery

import (
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	"github.com/PuerkitoBio/goquery"
)

// Selectors for the listing-page markup. The item markup varies across
// shops and lazy-loading states; the thumbnail strategies below cover the
// observed variants in order of specificity.
const (
	containerSelector   = "div.letaky-grid"
	itemSelector        = "div.brochure-thumb.grid-item"
	headingSelector     = "h1, h2, h3, h4, h5, h6"
	shopNameSelector    = "span.shop-name"
	dateFullSelector    = "span.hidden-sm"
	dateCompactSelector = "span.visible-sm"
)

// Ensure Extractor implements leaflet.Extractor at compile time.
var _ leaflet.Extractor = (*Extractor)(nil)

// Extractor extracts leaflet records from listing-page HTML. Each item
// fragment is assembled and validated independently; fragments that fail
// are logged and skipped so one broken item never loses a page.
type Extractor struct {
	base   *url.URL
	parser *leaflet.DateRangeParser
	logger *slog.Logger

	// Now supplies the capture timestamp. Overridable in tests.
	Now func() time.Time
}

// NewExtractor creates a new Extractor. The base URL is used to resolve
// relative thumbnail URLs to absolute form.
func NewExtractor(baseURL string, logger *slog.Logger) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, leaflet.Errorf(leaflet.EINVALID, "invalid base URL: %v", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{
		base:   base,
		parser: leaflet.NewDateRangeParser(),
		logger: logger,
		Now:    time.Now,
	}, nil
}

// Extract locates all item fragments in the page and returns the records
// that assembled and validated cleanly, in document order. A non-empty
// shopName overrides per-fragment shop-name detection. A page without an
// item container yields an empty result and a nil error.
func (e *Extractor) Extract(html string, shopName string) ([]*leaflet.Leaflet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leaflet.Errorf(leaflet.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		e.logger.Debug("item container not found", "selector", containerSelector)
		return nil, nil
	}

	var leaflets []*leaflet.Leaflet
	container.Find(itemSelector).Each(func(i int, item *goquery.Selection) {
		rec, err := e.assemble(item, shopName)
		if err != nil {
			e.logger.Warn("skipping leaflet item",
				"position", i+1,
				"code", leaflet.ErrorCode(err),
				"reason", leaflet.ErrorMessage(err),
			)
			return
		}
		leaflets = append(leaflets, rec)
	})

	return leaflets, nil
}

// assemble resolves all fields of one item fragment, parses its date text,
// stamps the capture time, and validates the candidate record. Every
// failure is returned as an error value for the caller to log and skip.
func (e *Extractor) assemble(item *goquery.Selection, shopName string) (*leaflet.Leaflet, error) {
	title, err := extractTitle(item)
	if err != nil {
		return nil, err
	}

	thumbnail, err := extractThumbnail(item)
	if err != nil {
		return nil, leaflet.Errorf(leaflet.ErrorCode(err), "%s (%s)", leaflet.ErrorMessage(err), title)
	}
	thumbnail = e.resolveURL(thumbnail)

	if shopName == "" {
		shopName, err = extractShopName(item)
		if err != nil {
			return nil, err
		}
	}

	dateText, err := extractDateText(item)
	if err != nil {
		return nil, err
	}

	validity, err := e.parser.Parse(dateText)
	if err != nil {
		return nil, err
	}

	rec := &leaflet.Leaflet{
		Title:        title,
		ThumbnailURL: thumbnail,
		ShopName:     shopName,
		ValidFrom:    validity.From,
		ValidTo:      validity.To,
		CapturedAt:   e.Now(),
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// extractTitle returns the first heading's text, whitespace-collapsed.
func extractTitle(item *goquery.Selection) (string, error) {
	heading := item.Find(headingSelector).First()
	if heading.Length() == 0 {
		return "", leaflet.Errorf(leaflet.ENOTFOUND, "title not found in item fragment")
	}
	return collapseWhitespace(heading.Text()), nil
}

// thumbnailStrategy is one attempt at locating an item's thumbnail URL.
// Strategies are tried in order; the first non-empty result wins.
type thumbnailStrategy struct {
	name    string
	extract func(item *goquery.Selection) string
}

var thumbnailStrategies = []thumbnailStrategy{
	// Image wrapper with a <picture> element. Lazy-loaded items park the
	// real URL in data-src or srcset while src holds a placeholder or
	// nothing.
	{name: "picture", extract: func(item *goquery.Selection) string {
		img := item.Find("div.image-wrapper picture img").First()
		if img.Length() == 0 {
			return ""
		}
		if src := attr(img, "src"); src != "" {
			return src
		}
		if src := attr(img, "data-src"); src != "" {
			return src
		}
		return firstSrcsetURL(img.AttrOr("srcset", ""))
	}},
	// Image wrapper without a <picture> element.
	{name: "image-wrapper", extract: srcOrDataSrc("div.image-wrapper img")},
	// Generic figure markup.
	{name: "figure", extract: srcOrDataSrc("figure img")},
}

// srcOrDataSrc builds a strategy that reads src then data-src from the
// first image matching selector.
func srcOrDataSrc(selector string) func(item *goquery.Selection) string {
	return func(item *goquery.Selection) string {
		img := item.Find(selector).First()
		if img.Length() == 0 {
			return ""
		}
		if src := attr(img, "src"); src != "" {
			return src
		}
		return attr(img, "data-src")
	}
}

// extractThumbnail runs the thumbnail strategies in order and returns the
// first non-empty URL. The result may still be relative; the caller
// resolves it against the base URL.
func extractThumbnail(item *goquery.Selection) (string, error) {
	for _, strategy := range thumbnailStrategies {
		if u := strategy.extract(item); u != "" {
			return u, nil
		}
	}
	return "", leaflet.Errorf(leaflet.ENOTFOUND, "thumbnail not found in item fragment")
}

// extractShopName reads the dedicated shop-name label.
func extractShopName(item *goquery.Selection) (string, error) {
	name := strings.TrimSpace(item.Find(shopNameSelector).First().Text())
	if name == "" {
		return "", leaflet.Errorf(leaflet.ENOTFOUND, "shop name not found in item fragment")
	}
	return name, nil
}

// extractDateText prefers the full/desktop date label and falls back to
// the compact/mobile one when the former is absent or empty.
func extractDateText(item *goquery.Selection) (string, error) {
	text := strings.TrimSpace(item.Find(dateFullSelector).First().Text())
	if text == "" {
		text = strings.TrimSpace(item.Find(dateCompactSelector).First().Text())
	}
	if text == "" {
		return "", leaflet.Errorf(leaflet.ENOTFOUND, "date text not found in item fragment")
	}
	return text, nil
}

// resolveURL resolves a possibly relative URL against the site base URL.
// Absolute URLs pass through unchanged; unparseable ones are returned
// as-is for the record validator to reject.
func (e *Extractor) resolveURL(raw string) string {
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return e.base.ResolveReference(ref).String()
}

// attr returns the trimmed attribute value, or "" when absent.
func attr(sel *goquery.Selection, name string) string {
	return strings.TrimSpace(sel.AttrOr(name, ""))
}

// firstSrcsetURL returns the URL of the first srcset candidate: split on
// commas, then on whitespace, keep the first segment.
func firstSrcsetURL(srcset string) string {
	first, _, _ := strings.Cut(srcset, ",")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// collapseWhitespace trims s and collapses internal whitespace runs to
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
