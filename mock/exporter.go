package mock

import leaflet "github.com/K-Tina/Leaflet-scraper"

var _ leaflet.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of leaflet.Exporter.
type Exporter struct {
	ExportFn func(leaflets []*leaflet.Leaflet) error
}

func (e *Exporter) Export(leaflets []*leaflet.Leaflet) error {
	return e.ExportFn(leaflets)
}
