package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/pages"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	contentPrompt := promptui.Prompt{
		Label:   "Directory holding page fragments (.html / .md)",
		Default: cfg.ContentDir,
	}
	if cfg.ContentDir, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	cvPrompt := promptui.Prompt{
		Label:   "CV data file or URL (.json / .yaml)",
		Default: cfg.CVSource,
	}
	if cfg.CVSource, err = cvPrompt.Run(); err != nil {
		return nil, fmt.Errorf("cv source: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:    "Port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	photosPrompt := promptui.Select{
		Label: "Show a photo strip?",
		Items: []string{"no", "yes"},
	}
	_, photos, err := photosPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("photos: %w", err)
	}
	if photos == "yes" {
		listingPrompt := promptui.Prompt{
			Label: "Directory listing URL (e.g. https://api.github.com/repos/<user>/<repo>/contents/photos)",
		}
		if cfg.Photos.ListingURL, err = listingPrompt.Run(); err != nil {
			return nil, fmt.Errorf("photo listing url: %w", err)
		}
	} else {
		cfg.Nav = withoutPage(cfg.Nav, PagePhotos)
	}

	defaultPrompt := promptui.Select{
		Label: "Default page",
		Items: navIDs(cfg.Nav),
	}
	if _, cfg.DefaultPage, err = defaultPrompt.Run(); err != nil {
		return nil, fmt.Errorf("default page: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func withoutPage(nav []NavPage, id string) []NavPage {
	out := make([]NavPage, 0, len(nav))
	for _, p := range nav {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func navIDs(nav []NavPage) []string {
	ids := make([]string, 0, len(nav))
	for _, p := range nav {
		if pages.ValidID(p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
