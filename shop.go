package leaflet

// Shop is one retail chain listed in the aggregation site's sidebar. Shops
// are identified by their canonical URL; two shops with the same URL are
// the same shop regardless of display name.
type Shop struct {
	Name string
	URL  string
}

// Validate returns an error if the shop contains invalid fields.
func (s *Shop) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "shop name required")
	}
	if !isAbsoluteURL(s.URL) {
		return Errorf(EINVALID, "shop URL must be absolute, got %q", s.URL)
	}
	return nil
}
