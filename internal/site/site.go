package site

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"time"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/photos"
	"github.com/ziadkadry99/folio/internal/render"
)

// Site assembles fragments and full pages from the content sources.
type Site struct {
	Title        string
	DefaultPage  string
	Nav          []config.NavPage
	ScrollOffset int

	Pages    *pages.Store
	CV       cv.Source
	Photos   *photos.Client // nil when the photo strip is disabled
	Renderer *render.Renderer

	// Now is the clock used to resolve ongoing entries.
	Now func() time.Time
}

// New builds a Site from configuration.
func New(cfg *config.Config) (*Site, error) {
	r, err := render.New()
	if err != nil {
		return nil, err
	}
	s := &Site{
		Title:        cfg.SiteTitle,
		DefaultPage:  cfg.DefaultPage,
		Nav:          cfg.Nav,
		ScrollOffset: cfg.Photos.ScrollOffset,
		Pages:        pages.NewStore(cfg.ContentDir, cfg.CacheFragments),
		CV:           cv.NewSource(cfg.CVSource),
		Renderer:     r,
		Now:          time.Now,
	}
	if cfg.Photos.ListingURL != "" {
		s.Photos = photos.NewClient(cfg.Photos.ListingURL)
	}
	return s, nil
}

// PageOptions are the per-visitor bits of a full page.
type PageOptions struct {
	DarkMode   bool
	LiveReload bool
}

// Fragment returns the HTML injected into the content container for id.
// CV and photo failures become inline error markup; a missing page
// returns an error wrapping pages.ErrNotFound.
func (s *Site) Fragment(ctx context.Context, id string) ([]byte, error) {
	switch {
	case id == config.PageCV:
		return s.cvFragment(ctx)
	case id == config.PagePhotos && s.Photos != nil:
		return s.photosFragment(ctx)
	}
	return s.Pages.Get(ctx, id)
}

func (s *Site) cvFragment(ctx context.Context) ([]byte, error) {
	doc, err := s.CV.Load(ctx)
	if err != nil {
		log.Printf("site: loading cv: %v", err)
		return s.errorFragment("Could not load CV: " + err.Error())
	}

	var buf bytes.Buffer
	views := render.FromResults(doc.BuildSections(s.Now()))
	if err := s.Renderer.CV(&buf, views); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Site) photosFragment(ctx context.Context) ([]byte, error) {
	list, err := s.Photos.List(ctx)
	if err != nil {
		log.Printf("site: listing photos: %v", err)
		return s.errorFragment("Could not load photos: " + err.Error())
	}

	strip := render.PhotoStrip{ScrollOffset: s.ScrollOffset}
	for _, p := range list {
		strip.Photos = append(strip.Photos, render.PhotoView{Name: p.Name, URL: p.URL})
	}
	var buf bytes.Buffer
	if err := s.Renderer.Photos(&buf, strip); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Site) errorFragment(message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Renderer.Error(&buf, message); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page renders the full shell with id's fragment already injected. When
// the fragment cannot be produced the shell carries an inline error and
// the error is returned alongside the page.
func (s *Site) Page(ctx context.Context, id string, opts PageOptions) ([]byte, error) {
	content, fragErr := s.Fragment(ctx, id)
	if fragErr != nil {
		var err error
		content, err = s.errorFragment(fragErr.Error())
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err := s.Renderer.Shell(&buf, render.ShellData{
		SiteTitle:  s.Title,
		PageID:     id,
		Nav:        s.NavLinks(id),
		DarkMode:   opts.DarkMode,
		Content:    trusted(content),
		LiveReload: opts.LiveReload,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), fragErr
}

// trusted marks a fragment as safe HTML. Fragments come from the site
// owner's content directory or from our own templates.
func trusted(b []byte) template.HTML {
	return template.HTML(b)
}

// NavLinks returns the navigation with active marking the current page.
func (s *Site) NavLinks(active string) []render.NavLink {
	links := make([]render.NavLink, 0, len(s.Nav))
	for _, p := range s.Nav {
		links = append(links, render.NavLink{
			ID:     p.ID,
			Title:  p.Title,
			Href:   s.Href(p.ID),
			Active: p.ID == active,
		})
	}
	return links
}

// Href is the absolute path of a page's shell.
func (s *Site) Href(id string) string {
	if id == s.DefaultPage {
		return "/"
	}
	return "/" + id
}

// DocumentJSON loads the CV and encodes it as JSON.
func (s *Site) DocumentJSON(ctx context.Context) ([]byte, error) {
	doc, err := s.CV.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cv.EncodeJSON(doc)
}

// PageIDs lists every page the site can serve: content files plus the
// navigation entries, in navigation order first.
func (s *Site) PageIDs() ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, p := range s.Nav {
		add(p.ID)
	}
	files, err := s.Pages.List()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	for _, id := range files {
		add(id)
	}
	return ids, nil
}
