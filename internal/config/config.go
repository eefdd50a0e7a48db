package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/folio/internal/pages"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a
// double underscore: FOLIO_PHOTOS__LISTING_URL -> photos.listing_url.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured nav replaces the default one instead of merging into it.
	if k.Exists("nav") {
		cfg.Nav = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.CVSource == "" {
		return fmt.Errorf("cv_source is required")
	}
	if !pages.ValidID(c.DefaultPage) {
		return fmt.Errorf("invalid default_page %q", c.DefaultPage)
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}

	seen := make(map[string]bool)
	for _, p := range c.Nav {
		if !pages.ValidID(p.ID) {
			return fmt.Errorf("invalid nav page id %q", p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate nav page id %q", p.ID)
		}
		seen[p.ID] = true
	}

	if c.Photos.ListingURL != "" &&
		!strings.HasPrefix(c.Photos.ListingURL, "http://") &&
		!strings.HasPrefix(c.Photos.ListingURL, "https://") {
		return fmt.Errorf("photos.listing_url must be an http(s) URL")
	}
	if c.Photos.ScrollOffset < 0 {
		return fmt.Errorf("photos.scroll_offset must be non-negative")
	}

	return nil
}
