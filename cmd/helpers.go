package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/folio/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "config: %s (content=%s, cv=%s)\n", cfgFile, cfg.ContentDir, cfg.CVSource)
	}
	return cfg, nil
}
