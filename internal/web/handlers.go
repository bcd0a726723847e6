package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-widget/internal/locator"
	"ulascansenturk/weather-widget/internal/session"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	State      widget.UIState
	Dark       bool
	AutoLocate bool
}

// Handler serves the widget page and the form actions that drive it.
type Handler struct {
	sessions *session.Manager
	timeout  time.Duration
}

func NewHandler(sessions *session.Manager, timeout time.Duration) *Handler {
	return &Handler{
		sessions: sessions,
		timeout:  timeout,
	}
}

// Page renders the current state. A session that has not acted yet asks the
// browser for its position, like the widget does on first load. Rendering never
// creates a session; the first form action does.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	state, pref := widget.UIState{}, theme.Light
	if controller, ok := h.sessions.Lookup(r); ok {
		state, pref = controller.State(), controller.Theme()
	}

	data := pageData{
		State:      state,
		Dark:       pref.IsDark(),
		AutoLocate: state.IsIdle(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render widget page")
	}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	controller := h.sessions.FromRequest(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state := controller.SearchCity(ctx, r.PostFormValue("city"))
	hlog.FromRequest(r).Debug().Str("state", state.Kind.String()).Msg("search settled")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Locate(w http.ResponseWriter, r *http.Request) {
	controller := h.sessions.FromRequest(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report := locator.BrowserReport{
		Latitude:    r.PostFormValue("lat"),
		Longitude:   r.PostFormValue("lon"),
		ErrorCode:   r.PostFormValue("error_code"),
		Unsupported: r.PostFormValue("unsupported") == "true",
	}

	state := controller.Locate(ctx, report)
	hlog.FromRequest(r).Debug().Str("state", state.Kind.String()).Msg("locate settled")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	controller := h.sessions.FromRequest(w, r)

	if _, err := controller.ToggleTheme(r.Context()); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to persist theme")
		http.Error(w, "failed to save theme", http.StatusServiceUnavailable)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
