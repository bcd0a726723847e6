package web_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-widget/internal/mocks"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/session"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/web"
	"ulascansenturk/weather-widget/internal/widget"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	weather  *mocks.MockWeatherService
	store    *mocks.MockStore
	sessions *session.Manager
	handler  *web.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.weather = mocks.NewMockWeatherService(s.T())
	s.store = mocks.NewMockStore(s.T())
	presenter := widget.NewPresenter("")

	s.sessions = session.NewManager(func(ctx context.Context, id string) *widget.Controller {
		return widget.NewController(ctx, id, s.weather, presenter, s.store)
	}, time.Hour, time.Hour)
	s.handler = web.NewHandler(s.sessions, 5*time.Second)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.sessions.Close()
}

func (s *HandlerTestSuite) postForm(handle http.HandlerFunc, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handle(w, req)
	return w
}

func (s *HandlerTestSuite) sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	s.FailNow("session cookie not set")
	return nil
}

func (s *HandlerTestSuite) TestSearchRedirectsAndRendersResult() {
	s.store.On("Get", mock.Anything, mock.Anything).Return("", theme.ErrNotFound).Once()
	s.weather.On("GetWeather", mock.Anything, providers.CityQuery("Oslo")).Return(&providers.WeatherResult{
		Name:     "Oslo",
		Timezone: 3600,
		Weather:  []providers.Condition{{Description: "light snow", Icon: "13n"}},
		Main:     &providers.MainReading{Temp: -3.5, FeelsLike: -8.2, Pressure: 1020, Humidity: 85},
		Wind:     &providers.WindReading{Speed: 4, Deg: 350},
		Sys:      &providers.SysInfo{Country: "NO"},
	}, nil).Once()

	w := s.postForm(s.handler.Search, url.Values{"city": {"  Oslo "}})
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(s.sessionCookie(w))
	page := httptest.NewRecorder()
	s.handler.Page(page, req)

	s.Equal(http.StatusOK, page.Code)
	s.Equal("no-store", page.Header().Get("Cache-Control"))
	body := page.Body.String()
	s.Contains(body, `data-state="loaded"`)
	s.Contains(body, "13n@4x.png")
	s.Contains(body, `<span id="temp">-3</span>`)
	s.Contains(body, `<span id="windDirection">N</span>`)
}

func (s *HandlerTestSuite) TestLocateWithGarbledCoordinates() {
	s.store.On("Get", mock.Anything, mock.Anything).Return("", theme.ErrNotFound).Once()

	w := s.postForm(s.handler.Locate, url.Values{"lat": {"north"}, "lon": {"2.35"}})
	s.Equal(http.StatusSeeOther, w.Code)

	controller, ok := s.sessions.Get(s.sessionCookie(w).Value)
	s.Require().True(ok)
	s.True(controller.State().IsError())
	s.Equal("Location information unavailable.", controller.State().Message)
}

func (s *HandlerTestSuite) TestToggleThemePersistFailure() {
	s.store.On("Get", mock.Anything, mock.Anything).Return("", theme.ErrNotFound).Once()
	s.store.On("Set", mock.Anything, mock.Anything, "dark").Return(errors.New("store offline")).Once()

	w := s.postForm(s.handler.ToggleTheme, url.Values{})
	s.Equal(http.StatusServiceUnavailable, w.Code)

	controller, ok := s.sessions.Get(s.sessionCookie(w).Value)
	s.Require().True(ok)
	s.Equal(theme.Light, controller.Theme())
}

func (s *HandlerTestSuite) TestToggleThemeRedirects() {
	s.store.On("Get", mock.Anything, mock.Anything).Return("", theme.ErrNotFound).Once()
	s.store.On("Set", mock.Anything, mock.Anything, "dark").Return(nil).Once()

	w := s.postForm(s.handler.ToggleTheme, url.Values{})
	s.Equal(http.StatusSeeOther, w.Code)

	controller, ok := s.sessions.Get(s.sessionCookie(w).Value)
	s.Require().True(ok)
	s.Equal(theme.Dark, controller.Theme())
}

func (s *HandlerTestSuite) TestPageWithoutSessionCreatesNothing() {
	w := httptest.NewRecorder()
	s.handler.Page(w, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Empty(w.Result().Cookies())
	s.Contains(w.Body.String(), `data-state="idle"`)
	s.NotContains(w.Body.String(), `http-equiv="refresh"`)
	s.Equal(0, s.sessions.Len())
}

func (s *HandlerTestSuite) TestLoadingPageRefreshesItself() {
	s.store.On("Get", mock.Anything, mock.Anything).Return("", theme.ErrNotFound).Once()

	release := make(chan struct{})
	s.weather.On("GetWeather", mock.Anything, providers.CityQuery("Oslo")).
		Run(func(mock.Arguments) { <-release }).
		Return(nil, &providers.FetchError{Kind: providers.FetchNotFound, Status: http.StatusNotFound, Err: providers.ErrCityNotFound}).
		Once()

	id, controller := s.sessions.GetOrCreate(context.Background(), "")
	done := make(chan struct{})
	go func() {
		defer close(done)
		controller.SearchCity(context.Background(), "Oslo")
	}()

	s.Eventually(func() bool {
		return controller.State().IsLoading()
	}, time.Second, 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	w := httptest.NewRecorder()
	s.handler.Page(w, req)

	s.Contains(w.Body.String(), `data-state="loading"`)
	s.Contains(w.Body.String(), `<meta http-equiv="refresh" content="2">`)

	close(release)
	<-done

	w = httptest.NewRecorder()
	s.handler.Page(w, req)
	s.Contains(w.Body.String(), widget.MsgCityNotFound)
	s.NotContains(w.Body.String(), `http-equiv="refresh"`)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
