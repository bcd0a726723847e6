package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-widget/internal/api/v1/handlers"
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/session"
	"ulascansenturk/weather-widget/internal/web"
	"ulascansenturk/weather-widget/internal/widget"
)

type Dependencies struct {
	Logger         zerolog.Logger
	Sessions       *session.Manager
	WeatherService service.WeatherService
	Presenter      *widget.Presenter
	QueryLog       weatherquery.Repository // nil when the query log is disabled
	Timeout        time.Duration
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(deps.Logger))
	r.Use(requestIDLogger)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	}))
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	page := web.NewHandler(deps.Sessions, deps.Timeout)
	r.Get("/", page.Page)
	r.Post("/search", page.Search)
	r.Post("/locate", page.Locate)
	r.Post("/theme", page.ToggleTheme)

	weather := handlers.NewWeatherHandler(deps.WeatherService, deps.Presenter, deps.Timeout)
	state := handlers.NewStateHandler(deps.Sessions)
	queryLog := handlers.NewQueryLogHandler(deps.QueryLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/weather", weather.GetWeather)
		r.Get("/state", state.GetState)
		r.Get("/queries", queryLog.ListQueries)
	})

	return r
}

func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			logger := zerolog.Ctx(r.Context())
			logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}
