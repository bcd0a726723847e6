package session

import (
	"net/http"

	"ulascansenturk/weather-widget/internal/widget"
)

const CookieName = "weather_widget_session"

// Lookup returns the live controller for the session cookie on r. It never
// creates a session.
func (m *Manager) Lookup(r *http.Request) (*widget.Controller, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return m.Get(cookie.Value)
}

// FromRequest resolves the controller for the session cookie on r and refreshes
// the cookie on w, creating a new session when needed.
func (m *Manager) FromRequest(w http.ResponseWriter, r *http.Request) *widget.Controller {
	var current string
	if cookie, err := r.Cookie(CookieName); err == nil {
		current = cookie.Value
	}

	id, controller := m.GetOrCreate(r.Context(), current)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return controller
}
