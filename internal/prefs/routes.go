package prefs

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// preferenceBody is the JSON shape of the dark-mode preference.
type preferenceBody struct {
	DarkMode Theme `json:"darkMode"`
}

// RegisterRoutes mounts preference endpoints under /api/preferences. The
// router must already run Middleware.
func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/api/preferences", func(r chi.Router) {
		r.Get("/", handleGet())
		r.Post("/dark-mode/toggle", handleToggle(store))
		r.Put("/dark-mode", handleSet(store))
	})
}

func handleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := FromContext(r.Context())
		writeJSON(w, http.StatusOK, preferenceBody{DarkMode: sess.Theme()})
	}
}

func handleToggle(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
			return
		}
		save(w, r, store, sess, sess.Theme().Toggle())
	}
}

func handleSet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
			return
		}
		var body struct {
			DarkMode string `json:"darkMode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		theme, err := ParseTheme(body.DarkMode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		save(w, r, store, sess, theme)
	}
}

func save(w http.ResponseWriter, r *http.Request, store Store, sess Session, theme Theme) {
	if err := store.Set(r.Context(), sess.VisitorID, theme); err != nil {
		log.Printf("prefs: saving preference for %s: %v", sess.VisitorID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save preference"})
		return
	}
	SetThemeCookie(w, theme)
	writeJSON(w, http.StatusOK, preferenceBody{DarkMode: theme})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
