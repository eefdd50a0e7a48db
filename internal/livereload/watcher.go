package livereload

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/folio/internal/pages"
)

// Watcher reports which page a filesystem change belongs to.
type Watcher struct {
	fs         *fsnotify.Watcher
	contentDir string
	files      map[string]string
	onChange   func(page string)
}

// NewWatcher watches the content directory for page files. extra maps
// additional file paths, such as the CV data file, to the page they feed.
func NewWatcher(contentDir string, extra map[string]string, onChange func(page string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dirs := map[string]bool{filepath.Clean(contentDir): true}
	files := make(map[string]string, len(extra))
	for path, page := range extra {
		abs := filepath.Clean(path)
		files[abs] = page
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return &Watcher{fs: fw, contentDir: filepath.Clean(contentDir), files: files, onChange: onChange}, nil
}

// Run delivers change notifications until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fs.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if page, ok := w.PageFor(ev.Name); ok {
				w.onChange(page)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("livereload: watch error: %v", err)
		}
	}
}

// PageFor maps a changed path to the page it affects. Page files count
// only when they sit directly in the content directory.
func (w *Watcher) PageFor(path string) (string, bool) {
	path = filepath.Clean(path)
	if page, ok := w.files[path]; ok {
		return page, true
	}
	if filepath.Dir(path) != w.contentDir {
		return "", false
	}
	if id := pages.IDFromPath(path); id != "" {
		return id, true
	}
	return "", false
}
