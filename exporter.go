package leaflet

// Exporter persists extracted records for downstream consumers.
type Exporter interface {
	// Export writes the records in order. Records passed here have
	// already been validated by the assembler; Export never re-filters.
	Export(leaflets []*Leaflet) error
}
