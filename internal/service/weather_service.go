package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/providers"
)

type WeatherService interface {
	GetWeather(ctx context.Context, query providers.Query) (*providers.WeatherResult, error)
}

type weatherService struct {
	provider         providers.WeatherProvider
	weatherQueryRepo weatherquery.Repository
}

// NewWeatherService wires a provider and an optional query log (nil disables logging).
func NewWeatherService(provider providers.WeatherProvider, weatherQueryRepo weatherquery.Repository) WeatherService {
	return &weatherService{
		provider:         provider,
		weatherQueryRepo: weatherQueryRepo,
	}
}

// GetWeather issues exactly one provider request. Failures are returned as is; nothing is retried.
func (s *weatherService) GetWeather(ctx context.Context, query providers.Query) (*providers.WeatherResult, error) {
	result, err := s.provider.GetCurrentWeather(ctx, query)
	s.record(ctx, query, result, err)
	return result, err
}

func (s *weatherService) record(ctx context.Context, query providers.Query, result *providers.WeatherResult, fetchErr error) {
	if s.weatherQueryRepo == nil {
		return
	}

	entry := &weatherquery.WeatherQuery{
		Kind:     query.Kind(),
		Location: query.String(),
		Outcome:  "ok",
	}

	if fetchErr != nil {
		entry.Outcome = providers.FetchErrorKindOf(fetchErr).String()
		var fe *providers.FetchError
		if errors.As(fetchErr, &fe) {
			entry.StatusCode = fe.Status
		}
	} else if result != nil {
		entry.StatusCode = 200
		entry.ResolvedName = result.Name
		if result.Main != nil {
			entry.Temperature = result.Main.Temp
		}
	}

	// the caller's request may already be gone; the log entry should still land
	if err := s.weatherQueryRepo.LogWeatherQuery(context.WithoutCancel(ctx), entry); err != nil {
		log.Error().Err(err).Str("location", entry.Location).Msg("failed to log weather query")
	}
}
