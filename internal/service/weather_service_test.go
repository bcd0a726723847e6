package service_test

import (
	"context"
	"errors"
	"testing"
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/mocks"
	"ulascansenturk/weather-widget/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-widget/internal/service"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockProvider *mocks.MockWeatherProvider
	mockRepo     *mocks.MockRepository
	service      service.WeatherService
	ctx          context.Context
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockProvider = mocks.NewMockWeatherProvider(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewWeatherService(s.mockProvider, s.mockRepo)
	s.ctx = context.Background()
}

func (s *WeatherServiceTestSuite) TestGetWeatherSuccessIsLogged() {
	query := providers.CityQuery("Paris")
	expected := &providers.WeatherResult{
		Name: "Paris",
		Main: &providers.MainReading{Temp: 21.6},
	}

	s.mockProvider.On("GetCurrentWeather", mock.Anything, query).Return(expected, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Kind == "city" && q.Location == "Paris" && q.Outcome == "ok" &&
			q.StatusCode == 200 && q.ResolvedName == "Paris" && q.Temperature == 21.6
	})).Return(nil).Once()

	result, err := s.service.GetWeather(s.ctx, query)

	s.NoError(err)
	s.Same(expected, result)
}

func (s *WeatherServiceTestSuite) TestGetWeatherFailureIsLoggedAndNotRetried() {
	query := providers.CityQuery("Atlantis")
	fetchErr := &providers.FetchError{Kind: providers.FetchNotFound, Status: 404}

	s.mockProvider.On("GetCurrentWeather", mock.Anything, query).Return(nil, fetchErr).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Outcome == "not_found" && q.StatusCode == 404 && q.ResolvedName == ""
	})).Return(nil).Once()

	result, err := s.service.GetWeather(s.ctx, query)

	s.Nil(result)
	s.ErrorIs(err, providers.ErrCityNotFound)
	s.mockProvider.AssertNumberOfCalls(s.T(), "GetCurrentWeather", 1)
}

func (s *WeatherServiceTestSuite) TestCoordinateQueryIsLoggedByKind() {
	query := providers.CoordinatesQuery(48.85, 2.35)

	s.mockProvider.On("GetCurrentWeather", mock.Anything, query).
		Return(nil, &providers.FetchError{Kind: providers.FetchFailed}).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.MatchedBy(func(q *weatherquery.WeatherQuery) bool {
		return q.Kind == "coordinates" && q.Location == "48.85,2.35" && q.Outcome == "failed" && q.StatusCode == 0
	})).Return(nil).Once()

	_, err := s.service.GetWeather(s.ctx, query)

	s.ErrorIs(err, providers.ErrFetchFailed)
}

func (s *WeatherServiceTestSuite) TestLogFailureDoesNotFailRequest() {
	query := providers.CityQuery("Paris")
	expected := &providers.WeatherResult{Name: "Paris"}

	s.mockProvider.On("GetCurrentWeather", mock.Anything, query).Return(expected, nil).Once()
	s.mockRepo.On("LogWeatherQuery", mock.Anything, mock.Anything).Return(errors.New("database down")).Once()

	result, err := s.service.GetWeather(s.ctx, query)

	s.NoError(err)
	s.Equal("Paris", result.Name)
}

func (s *WeatherServiceTestSuite) TestWithoutQueryLog() {
	svc := service.NewWeatherService(s.mockProvider, nil)
	query := providers.CityQuery("Paris")

	s.mockProvider.On("GetCurrentWeather", mock.Anything, query).
		Return(&providers.WeatherResult{Name: "Paris"}, nil).Once()

	result, err := svc.GetWeather(s.ctx, query)

	s.NoError(err)
	s.Equal("Paris", result.Name)
	s.mockRepo.AssertNotCalled(s.T(), "LogWeatherQuery")
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}
