package config

// NavPage is one entry of the site navigation.
type NavPage struct {
	ID    string `yaml:"id" koanf:"id"`
	Title string `yaml:"title" koanf:"title"`
}

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	SiteTitle       string       `yaml:"site_title" koanf:"site_title"`
	Port            int          `yaml:"port" koanf:"port"`
	ContentDir      string       `yaml:"content_dir" koanf:"content_dir"`
	CVSource        string       `yaml:"cv_source" koanf:"cv_source"`
	DefaultPage     string       `yaml:"default_page" koanf:"default_page"`
	Nav             []NavPage    `yaml:"nav" koanf:"nav"`
	Database        string       `yaml:"database" koanf:"database"`
	AllowAllOrigins bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	CacheFragments  bool         `yaml:"cache_fragments" koanf:"cache_fragments"`
	Watch           bool         `yaml:"watch" koanf:"watch"`
	ExportDir       string       `yaml:"export_dir" koanf:"export_dir"`
	Photos          PhotosConfig `yaml:"photos" koanf:"photos"`
}

// PhotosConfig holds the photo strip settings. An empty ListingURL
// disables the strip.
type PhotosConfig struct {
	ListingURL   string `yaml:"listing_url" koanf:"listing_url"`
	ScrollOffset int    `yaml:"scroll_offset" koanf:"scroll_offset"`
}
