package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
)

// Exporter writes the site as static files that any file server can host.
type Exporter struct {
	Site      *Site
	OutputDir string
	Reporter  progress.Reporter
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(s *Site, outputDir string, reporter progress.Reporter) *Exporter {
	return &Exporter{Site: s, OutputDir: outputDir, Reporter: reporter}
}

// Export builds the static site. Returns the number of pages written.
//
// Layout:
//
//	index.html            shell for the default page
//	<id>/index.html       shell for every other page
//	pages/<id>.html       fragments fetched by the navigation script
//	data/cv.json          the CV document
//	static/               stylesheet and script
func (e *Exporter) Export(ctx context.Context) (int, error) {
	ids, err := e.Site.PageIDs()
	if err != nil {
		return 0, fmt.Errorf("listing pages: %w", err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("no pages found in %s", e.Site.Pages.Dir())
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := e.write("static/style.css", []byte(render.StyleCSS)); err != nil {
		return 0, err
	}
	if err := e.write("static/script.js", []byte(render.ScriptJS)); err != nil {
		return 0, err
	}

	if e.Reporter != nil {
		e.Reporter.Start(len(ids))
		defer e.Reporter.Finish()
	}

	doc, err := e.Site.DocumentJSON(ctx)
	if err != nil {
		e.skip("data/cv.json", err)
	} else if err := e.write("data/cv.json", doc); err != nil {
		return 0, err
	}

	written := 0
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if e.Reporter != nil {
			e.Reporter.Update(i+1, id)
		}

		ok, err := e.exportPage(ctx, id)
		if err != nil {
			return written, fmt.Errorf("exporting %s: %w", id, err)
		}
		if ok {
			written++
		}
	}
	return written, nil
}

// exportPage writes the fragment and shell for id. Navigation entries
// without content are skipped.
func (e *Exporter) exportPage(ctx context.Context, id string) (bool, error) {
	fragment, err := e.Site.Fragment(ctx, id)
	if errors.Is(err, pages.ErrNotFound) {
		e.skip(id, err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := e.write(filepath.Join("pages", id+".html"), fragment); err != nil {
		return false, err
	}

	shell, err := e.Site.Page(ctx, id, PageOptions{})
	if err != nil {
		return false, err
	}
	if err := e.write(e.shellPath(id), shell); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Exporter) skip(output string, err error) {
	if e.Reporter != nil {
		e.Reporter.Skip(output, err.Error())
		return
	}
	log.Printf("export: skipping %s: %v", output, err)
}

func (e *Exporter) shellPath(id string) string {
	if id == e.Site.DefaultPage {
		return "index.html"
	}
	return filepath.Join(id, "index.html")
}

func (e *Exporter) write(rel string, data []byte) error {
	path := filepath.Join(e.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
