package leaflet

import "context"

// Fetcher retrieves HTML documents from URLs.
type Fetcher interface {
	// Fetch downloads the document at url and returns its body decoded
	// to UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
