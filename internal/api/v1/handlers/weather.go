package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-widget/internal/locator"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/widget"
)

// WeatherHandler serves stateless lookups: the same fetch and formatting as the
// widget, without touching any session.
type WeatherHandler struct {
	weatherService service.WeatherService
	presenter      *widget.Presenter
	timeout        time.Duration
	now            func() time.Time
}

func NewWeatherHandler(weatherService service.WeatherService, presenter *widget.Presenter, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		presenter:      presenter,
		timeout:        timeout,
		now:            time.Now,
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query, err := queryFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetWeather(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query.String()).Msg("failed to get weather data")
		respondWithError(w, statusFor(err), widget.MessageFor(err, query))
		return
	}

	view, err := h.presenter.Present(result, h.now())
	if err != nil {
		log.Error().Err(err).Str("query", query.String()).Msg("failed to present weather data")
		respondWithError(w, http.StatusInternalServerError, widget.MsgUnexpected)
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		Query: query.String(),
		View:  view,
	})
}

var errMissingLocation = errors.New("location parameter 'q' or 'lat' and 'lon' is required")

func queryFromRequest(r *http.Request) (providers.Query, error) {
	params := r.URL.Query()

	if params.Has("q") {
		query, err := locator.CityQuery(params.Get("q"))
		if err != nil {
			return providers.Query{}, errors.New(widget.MsgEmptyCity)
		}
		return query, nil
	}

	if params.Has("lat") || params.Has("lon") {
		pos, err := locator.BrowserReport{
			Latitude:  params.Get("lat"),
			Longitude: params.Get("lon"),
		}.CurrentPosition(r.Context())
		if err != nil {
			return providers.Query{}, errors.New("invalid 'lat'/'lon' parameters")
		}
		return providers.CoordinatesQuery(pos.Lat, pos.Lon), nil
	}

	return providers.Query{}, errMissingLocation
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, providers.ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, providers.ErrInvalidCredential), errors.Is(err, providers.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
