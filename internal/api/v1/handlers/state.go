package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/session"
	"ulascansenturk/weather-widget/internal/theme"
)

type StateHandler struct {
	sessions *session.Manager
}

func NewStateHandler(sessions *session.Manager) *StateHandler {
	return &StateHandler{sessions: sessions}
}

// GetState reports the session's state; without a live session it reports the
// state a new one would start in.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	response := StateResponse{Theme: theme.Light.String()}
	if controller, ok := h.sessions.Lookup(r); ok {
		response.State = controller.State()
		response.Theme = controller.Theme().String()
	}

	respondWithJSON(w, http.StatusOK, response)
}

type QueryLogHandler struct {
	repo weatherquery.Repository
}

// NewQueryLogHandler accepts a nil repository, in which case the log is reported as disabled.
func NewQueryLogHandler(repo weatherquery.Repository) *QueryLogHandler {
	return &QueryLogHandler{repo: repo}
}

func (h *QueryLogHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "query log is disabled")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	if location := r.URL.Query().Get("location"); location != "" {
		query, err := h.repo.GetRecentWeatherQuery(r.Context(), location)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "no queries for location")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("location", location).Msg("failed to get weather query")
			respondWithError(w, http.StatusInternalServerError, "failed to get weather query")
			return
		}
		respondWithJSON(w, http.StatusOK, QueryLogResponse{Queries: []weatherquery.WeatherQuery{*query}})
		return
	}

	queries, err := h.repo.ListRecentWeatherQueries(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list weather queries")
		respondWithError(w, http.StatusInternalServerError, "failed to list weather queries")
		return
	}
	if queries == nil {
		queries = []weatherquery.WeatherQuery{}
	}

	respondWithJSON(w, http.StatusOK, QueryLogResponse{Queries: queries})
}
