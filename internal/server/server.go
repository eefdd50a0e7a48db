package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/folio/internal/livereload"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the site shell, its fragments and the preference API.
type Server struct {
	cfg        Config
	site       *site.Site
	prefs      prefs.Store
	reload     *livereload.Hub // nil unless watching for changes
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. reload may be nil to disable live reload.
func New(cfg Config, st *site.Site, store prefs.Store, reload *livereload.Hub) *Server {
	s := &Server{
		cfg:    cfg,
		site:   st,
		prefs:  store,
		reload: reload,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/static/style.css", s.handleStyle)
	r.Get("/static/script.js", s.handleScript)

	// The websocket outlives any request timeout, so it sits outside that group.
	if s.reload != nil {
		r.Handle("/ws/reload", s.reload)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(prefs.Middleware(s.prefs))

		r.Get("/pages/{pageFile}", s.handleFragment)
		r.Get("/data/cv.json", s.handleCVData)
		r.Get("/api/photos", s.handlePhotos)
		prefs.RegisterRoutes(r, s.prefs)

		r.Get("/", s.handleShell)
		r.Get("/{pageId}", s.handleShell)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Site returns the site the server renders.
func (s *Server) Site() *site.Site { return s.site }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
