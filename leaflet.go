// Package leaflet extracts structured promotional-leaflet records from the
// semi-structured HTML markup of a retail-leaflet aggregation site. It parses
// inconsistent German date-range formats into a normalized representation,
// locates record fields in heterogeneous item markup via ordered fallback
// strategies, and validates each assembled record, skipping unusable items
// instead of aborting a batch.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package leaflet

import (
	"net/url"
	"strings"
	"time"
)

// CapturedAtLayout is the serialization layout for Leaflet.CapturedAt.
const CapturedAtLayout = "2006-01-02 15:04:05"

// Leaflet is one extracted promotional-leaflet record. A Leaflet is
// constructed once per item fragment, validated at assembly time, and never
// mutated afterwards.
type Leaflet struct {
	Title        string
	ThumbnailURL string
	ShopName     string
	ValidFrom    Date
	ValidTo      Validity
	CapturedAt   time.Time
}

// Validate returns an error if the record violates any invariant.
func (l *Leaflet) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return Errorf(EINVALID, "leaflet title required")
	}
	if strings.TrimSpace(l.ShopName) == "" {
		return Errorf(EINVALID, "leaflet shop name required")
	}
	if !isAbsoluteURL(l.ThumbnailURL) {
		return Errorf(EINVALID, "leaflet thumbnail URL must be absolute, got %q", l.ThumbnailURL)
	}
	if !l.ValidFrom.Valid() {
		return Errorf(EINVALID, "leaflet valid_from is not a calendar date: %s", l.ValidFrom)
	}
	if to, ok := l.ValidTo.Date(); ok {
		if !to.Valid() {
			return Errorf(EINVALID, "leaflet valid_to is not a calendar date: %s", to)
		}
		if l.ValidFrom.After(to) {
			return Errorf(EINVALID, "leaflet valid_from (%s) is after valid_to (%s)", l.ValidFrom, to)
		}
	}
	if l.CapturedAt.IsZero() {
		return Errorf(EINVALID, "leaflet capture timestamp required")
	}
	return nil
}

// IsOpenEnded reports whether the leaflet has no known end date.
func (l *Leaflet) IsOpenEnded() bool {
	return l.ValidTo.IsOpenEnded()
}

// Map converts the record to a plain key/value mapping for downstream
// serialization. An open-ended ValidTo serializes as the sentinel date,
// which sorts after every real date.
func (l *Leaflet) Map() map[string]string {
	return map[string]string{
		"title":         l.Title,
		"thumbnail_url": l.ThumbnailURL,
		"shop_name":     l.ShopName,
		"valid_from":    l.ValidFrom.String(),
		"valid_to":      l.ValidTo.String(),
		"captured_at":   l.CapturedAt.Format(CapturedAtLayout),
	}
}

// isAbsoluteURL reports whether s parses as a URL with an http or https
// scheme and a host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
