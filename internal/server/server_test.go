package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/livereload"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/photos"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/site"
)

type stubSource struct {
	doc *cv.Document
	err error
}

func (s stubSource) Load(context.Context) (*cv.Document, error) {
	return s.doc, s.err
}

func newTestServer(t *testing.T, cfg Config, src cv.Source, reload *livereload.Hub) *Server {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "home.html"), []byte("<p>Welcome home</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	st := &site.Site{
		Title:       "Test Site",
		DefaultPage: "home",
		Nav:         append([]config.NavPage(nil), config.DefaultNav...),
		Pages:       pages.NewStore(dir, true),
		CV:          src,
		Renderer:    r,
		Now:         func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) },
	}
	return New(cfg, st, prefs.NewSQLStore(database), reload)
}

func sampleDocument() *cv.Document {
	return &cv.Document{
		Experience: []cv.RawEntry{{Title: "Engineer", Institution: "Acme", Start: "2020-01"}},
	}
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true}, stubSource{doc: sampleDocument()}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestFragment(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/pages/home.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "<p>Welcome home</p>" {
		t.Errorf("body = %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}

func TestFragmentNotFound(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	for _, path := range []string{"/pages/missing.html", "/pages/home.txt", "/pages/..%2Fsecret.html"} {
		w := get(srv, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}

	w := get(srv, "/pages/missing.html")
	if !strings.Contains(w.Body.String(), "page not found") {
		t.Errorf("404 body should carry the error message, got %q", w.Body.String())
	}
}

func TestCVFragment(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/pages/cv.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Engineer") || !strings.Contains(body, "Jan 2020 - Present") {
		t.Errorf("cv fragment = %q", body)
	}
}

func TestCVFragmentLoadFailure(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{err: errors.New("cv unavailable")}, nil)

	w := get(srv, "/pages/cv.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected inline error with 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cv unavailable") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestCVData(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/data/cv.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var doc struct {
		Experience []map[string]string `json:"experience"`
		Education  []map[string]string `json:"education"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Experience) != 1 || doc.Experience[0]["title"] != "Engineer" {
		t.Errorf("experience = %v", doc.Experience)
	}
	if doc.Education == nil {
		t.Error("empty education should encode as []")
	}
}

func TestCVDataFailure(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{err: errors.New("down")}, nil)

	w := get(srv, "/data/cv.json")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestPhotosAPI(t *testing.T) {
	listing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name":"a.png","type":"file","download_url":"https://img/a.png"},
			{"name":"sub","type":"dir","download_url":""}
		]`))
	}))
	defer listing.Close()

	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)
	srv.Site().Photos = photos.NewClient(listing.URL)

	w := get(srv, "/api/photos")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []photos.Photo
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 1 || list[0].Name != "a.png" {
		t.Errorf("photos = %+v", list)
	}
}

func TestPhotosAPIUpstreamFailure(t *testing.T) {
	listing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer listing.Close()

	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)
	srv.Site().Photos = photos.NewClient(listing.URL)

	w := get(srv, "/api/photos")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error field")
	}
}

func TestPhotosAPIDisabled(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/api/photos")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("got %d %q, want 200 []", w.Code, w.Body.String())
	}
}

func TestShell(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<p>Welcome home</p>") {
		t.Error("default page fragment not injected")
	}
	if !strings.Contains(body, `data-current-page="home"`) {
		t.Error("default page not marked current")
	}
	if strings.Contains(body, "data-live-reload") {
		t.Error("live reload should be off without a hub")
	}

	w = get(srv, "/cv")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `href="/cv" data-page="cv" class="active"`) {
		t.Error("cv nav link should be active")
	}
}

func TestShellNotFound(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `id="content"`) {
		t.Error("404 should still render the shell")
	}
}

func TestShellDarkModeFromPreference(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	req := httptest.NewRequest("POST", "/api/preferences/dark-mode/toggle", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == prefs.VisitorCookie {
			req.AddCookie(c)
		}
	}
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `class="dark-mode"`) {
		t.Error("stored preference should render dark mode")
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)

	w := get(srv, "/static/style.css")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css: %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	w = get(srv, "/static/script.js")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/javascript") {
		t.Errorf("script.js: %d %q", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestLiveReloadRoute(t *testing.T) {
	off := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, nil)
	if w := get(off, "/ws/reload"); w.Code == http.StatusBadRequest {
		t.Error("websocket route should not exist without a hub")
	}

	on := newTestServer(t, Config{}, stubSource{doc: sampleDocument()}, livereload.NewHub())
	// A plain GET is not a websocket handshake, so the upgrader rejects it.
	if w := get(on, "/ws/reload"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 from upgrader, got %d", w.Code)
	}
	if w := get(on, "/"); !strings.Contains(w.Body.String(), `data-live-reload="true"`) {
		t.Error("shell should enable live reload")
	}
}
