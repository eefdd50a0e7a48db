package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/photos"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/site"
)

const htmlContentType = "text/html; charset=utf-8"

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(render.StyleCSS))
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(render.ScriptJS))
}

// handleFragment serves /pages/{pageId}.html.
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "pageFile")
	id, ok := strings.CutSuffix(file, ".html")
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := s.site.Fragment(r.Context(), id)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("server: fragment %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.Write(data)
}

// handleShell serves the full page for / and /{pageId}.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "pageId")
	if id == "" {
		id = s.site.DefaultPage
	}

	sess, _ := prefs.FromContext(r.Context())
	data, err := s.site.Page(r.Context(), id, site.PageOptions{
		DarkMode:   sess.DarkMode,
		LiveReload: s.reload != nil,
	})

	status := http.StatusOK
	if err != nil {
		if data == nil {
			log.Printf("server: page %s: %v", id, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		status = http.StatusInternalServerError
		if errors.Is(err, pages.ErrNotFound) {
			status = http.StatusNotFound
		} else {
			log.Printf("server: page %s: %v", id, err)
		}
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	w.Write(data)
}

func (s *Server) handleCVData(w http.ResponseWriter, r *http.Request) {
	data, err := s.site.DocumentJSON(r.Context())
	if err != nil {
		log.Printf("server: cv data: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handlePhotos(w http.ResponseWriter, r *http.Request) {
	if s.site.Photos == nil {
		writeJSON(w, http.StatusOK, []photos.Photo{})
		return
	}

	list, err := s.site.Photos.List(r.Context())
	if err != nil {
		log.Printf("server: photos: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	if list == nil {
		list = []photos.Photo{}
	}
	writeJSON(w, http.StatusOK, list)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
