package widget

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-widget/internal/locator"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/theme"
)

// Controller owns the widget of one browser session: its UI state, its theme and
// the token of the most recently issued action. Only the action holding the latest
// token may settle the state, so a slow earlier request never overwrites a newer one.
type Controller struct {
	sessionID string
	weather   service.WeatherService
	presenter *Presenter
	themes    theme.Store
	now       func() time.Time

	mu     sync.Mutex
	state  UIState
	latest uint64
	pref   theme.Preference
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController reads the stored theme once; a store failure falls back to Light.
func NewController(
	ctx context.Context,
	sessionID string,
	weather service.WeatherService,
	presenter *Presenter,
	themes theme.Store,
	opts ...Option,
) *Controller {
	c := &Controller{
		sessionID: sessionID,
		weather:   weather,
		presenter: presenter,
		themes:    themes,
		now:       time.Now,
		pref:      theme.Light,
	}
	for _, opt := range opts {
		opt(c)
	}

	pref, err := theme.Load(ctx, themes, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("falling back to light theme")
	}
	c.pref = pref

	return c
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Theme() theme.Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pref
}

// SearchCity runs a manual search. Blank input settles straight into Error
// without touching the network.
func (c *Controller) SearchCity(ctx context.Context, input string) UIState {
	query, err := locator.CityQuery(input)
	if err != nil {
		token := c.issue(false)
		c.settle(token, errorState(MessageFor(err, query)))
		return c.State()
	}

	token := c.issue(true)
	c.fetch(ctx, token, query)
	return c.State()
}

// Locate resolves the device position through g and fetches weather for it.
func (c *Controller) Locate(ctx context.Context, g locator.Geolocator) UIState {
	token := c.issue(true)

	query, err := locator.Resolve(ctx, g)
	if err != nil {
		c.settle(token, errorState(MessageFor(err, query)))
		return c.State()
	}

	c.fetch(ctx, token, query)
	return c.State()
}

// ToggleTheme persists the flipped preference and then applies it. On a store
// failure neither side changes.
func (c *Controller) ToggleTheme(ctx context.Context) (theme.Preference, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.pref.Toggle()
	if err := theme.Save(ctx, c.themes, c.sessionID, next); err != nil {
		return c.pref, err
	}
	c.pref = next

	return next, nil
}

func (c *Controller) fetch(ctx context.Context, token uint64, query providers.Query) {
	result, err := c.weather.GetWeather(ctx, query)
	if err != nil {
		log.Info().Err(err).Str("session", c.sessionID).Str("query", query.String()).Msg("weather fetch failed")
		c.settle(token, errorState(MessageFor(err, query)))
		return
	}

	view, err := c.presenter.Present(result, c.now())
	if err != nil {
		log.Warn().Err(err).Str("session", c.sessionID).Str("query", query.String()).Msg("weather result not renderable")
		c.settle(token, errorState(MsgUnexpected))
		return
	}

	c.settle(token, loadedState(view))
}

func (c *Controller) issue(loading bool) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	if loading {
		c.state = loadingState()
		c.state.Token = c.latest
	}
	return c.latest
}

func (c *Controller) settle(token uint64, next UIState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.latest {
		log.Debug().Str("session", c.sessionID).Uint64("token", token).Uint64("latest", c.latest).Msg("discarding stale result")
		return false
	}

	next.Token = token
	c.state = next
	return true
}
