package config

// Page IDs the server renders itself rather than reading from content_dir.
const (
	PageCV     = "cv"
	PagePhotos = "photos"
)

// DefaultNav is the navigation used when none is configured.
var DefaultNav = []NavPage{
	{ID: "home", Title: "Home"},
	{ID: PageCV, Title: "CV"},
	{ID: PagePhotos, Title: "Photos"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	nav := make([]NavPage, len(DefaultNav))
	copy(nav, DefaultNav)
	return &Config{
		SiteTitle:      "My Site",
		Port:           8080,
		ContentDir:     "content/pages",
		CVSource:       "content/data/cv.json",
		DefaultPage:    "home",
		Nav:            nav,
		Database:       ".folio/folio.db",
		CacheFragments: true,
		ExportDir:      "public",
		Photos: PhotosConfig{
			ScrollOffset: 300,
		},
	}
}
