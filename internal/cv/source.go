package cv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a CV document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// maxDocumentSize bounds how much of a remote document is read.
const maxDocumentSize = 4 << 20

// Source loads the CV document.
type Source interface {
	Load(ctx context.Context) (*Document, error)
}

// NewSource returns an HTTPSource for http(s) locations and a FileSource
// otherwise.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location, Client: &http.Client{Timeout: 15 * time.Second}}
	}
	return &FileSource{Path: location}
}

// FormatFor picks the format from a file name or URL path.
func FormatFor(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a document in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding cv yaml: %w", err)
		}
	default:
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding cv json: %w", err)
		}
	}
	return &doc, nil
}

// EncodeJSON renders the document as JSON, with empty sections as [].
func EncodeJSON(doc *Document) ([]byte, error) {
	out := *doc
	if out.Experience == nil {
		out.Experience = []RawEntry{}
	}
	if out.Education == nil {
		out.Education = []RawEntry{}
	}
	return sonic.Marshal(out)
}

// FileSource reads the document from disk on every Load.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading cv %s: %w", s.Path, err)
	}
	return Decode(data, FormatFor(filepath.Base(s.Path)))
}

// HTTPSource fetches the document from a URL on every Load.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Load(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building cv request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching cv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching cv: %s returned %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("reading cv response: %w", err)
	}

	format := FormatFor(req.URL.Path)
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		format = FormatYAML
	}
	return Decode(data, format)
}
