package prefs

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// VisitorCookie identifies a browser across visits.
const VisitorCookie = "folio_visitor"

const cookieMaxAge = 365 * 24 * time.Hour

// Session is the per-request visitor state, read from the store once when
// the request arrives.
type Session struct {
	VisitorID string
	DarkMode  bool
}

// Theme returns the session's dark-mode preference.
func (s Session) Theme() Theme {
	if s.DarkMode {
		return DarkEnabled
	}
	return DarkDisabled
}

type sessionKey struct{}

// FromContext returns the session attached by Middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// Middleware resolves the visitor's session, issuing a visitor cookie on
// first contact. A store failure falls back to the darkMode cookie.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := Session{}

			if c, err := r.Cookie(VisitorCookie); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					sess.VisitorID = id.String()
				}
			}
			fresh := sess.VisitorID == ""
			if fresh {
				sess.VisitorID = uuid.New().String()
				setCookie(w, VisitorCookie, sess.VisitorID, true)
			}

			theme := DarkDisabled
			if c, err := r.Cookie(darkModeKey); err == nil {
				if t, err := ParseTheme(c.Value); err == nil {
					theme = t
				}
			}
			if !fresh {
				stored, err := store.Get(r.Context(), sess.VisitorID)
				if err != nil {
					log.Printf("prefs: loading preference for %s: %v", sess.VisitorID, err)
				} else {
					theme = stored
				}
			} else if theme == DarkEnabled {
				if err := store.Set(r.Context(), sess.VisitorID, theme); err != nil {
					log.Printf("prefs: saving preference for %s: %v", sess.VisitorID, err)
				}
			}
			sess.DarkMode = theme == DarkEnabled

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// SetThemeCookie mirrors the theme into the darkMode cookie so pages
// render with the right class before any script runs.
func SetThemeCookie(w http.ResponseWriter, theme Theme) {
	setCookie(w, darkModeKey, string(theme), false)
}

func setCookie(w http.ResponseWriter, name, value string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}
