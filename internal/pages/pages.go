package pages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrNotFound is returned when no fragment exists for a page ID.
var ErrNotFound = errors.New("page not found")

var validID = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidID reports whether id is an acceptable page identifier.
func ValidID(id string) bool {
	return validID.MatchString(id)
}

// Store serves HTML fragments from a content directory. Each page is
// either <id>.html, served verbatim, or <id>.md, converted to HTML.
type Store struct {
	dir   string
	md    goldmark.Markdown
	cache bool

	mu      sync.RWMutex
	entries map[string][]byte
}

// NewStore returns a Store reading from dir. When cache is true, a page is
// read from disk once and kept until Invalidate is called.
func NewStore(dir string, cache bool) *Store {
	return &Store{
		dir:   dir,
		cache: cache,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		entries: make(map[string][]byte),
	}
}

// Dir returns the content directory.
func (s *Store) Dir() string { return s.dir }

// Get returns the fragment for id.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cache {
		s.mu.RLock()
		data, ok := s.entries[id]
		s.mu.RUnlock()
		if ok {
			return data, nil
		}
	}

	data, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if s.cache {
		s.mu.Lock()
		s.entries[id] = data
		s.mu.Unlock()
	}
	return data, nil
}

func (s *Store) load(id string) ([]byte, error) {
	htmlPath := filepath.Join(s.dir, id+".html")
	data, err := os.ReadFile(htmlPath)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", htmlPath, err)
	}

	mdPath := filepath.Join(s.dir, id+".md")
	src, err := os.ReadFile(mdPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", mdPath, err)
	}

	var buf bytes.Buffer
	if err := s.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting %s: %w", mdPath, err)
	}
	return buf.Bytes(), nil
}

// Invalidate drops cached fragments for the given IDs, or all of them
// when none are given.
func (s *Store) Invalidate(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(ids) == 0 {
		s.entries = make(map[string][]byte)
		return
	}
	for _, id := range ids {
		delete(s.entries, id)
	}
}

// IDFromPath maps a content file path to its page ID, or "" if the file is
// not a page.
func IDFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".html" && ext != ".md" {
		return ""
	}
	id := strings.TrimSuffix(base, ext)
	if !ValidID(id) {
		return ""
	}
	return id
}

// List returns the IDs of every page in the content directory, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}
	seen := make(map[string]bool)
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id := IDFromPath(e.Name())
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
