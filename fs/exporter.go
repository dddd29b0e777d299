// Package fs provides file-based export of leaflet records.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	leaflet "github.com/K-Tina/Leaflet-scraper"
)

// Ensure Exporter implements leaflet.Exporter at compile time.
var _ leaflet.Exporter = (*Exporter)(nil)

// Exporter writes records as a pretty-printed JSON array. The write is
// atomic: output goes to a temporary file in the target directory which is
// renamed over the destination, so a failed export never truncates a
// previous good file.
type Exporter struct {
	path string
}

// NewExporter creates an Exporter writing to the given file path.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Export writes the records' key/value mappings to the configured path.
func (e *Exporter) Export(leaflets []*leaflet.Leaflet) error {
	records := make([]map[string]string, 0, len(leaflets))
	for _, l := range leaflets {
		records = append(records, l.Map())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), e.path)
}
