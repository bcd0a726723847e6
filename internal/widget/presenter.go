package widget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ulascansenturk/weather-widget/internal/formatter"
	"ulascansenturk/weather-widget/internal/providers"
)

const DefaultIconBaseURL = "https://openweathermap.org/img/wn"

var ErrMalformedResult = errors.New("malformed weather result")

// View holds every display field of the result panel, already formatted.
type View struct {
	City          string `json:"city"`
	Country       string `json:"country"`
	IconURL       string `json:"icon_url"`
	IconAlt       string `json:"icon_alt"`
	Description   string `json:"description"`
	Temperature   int    `json:"temperature"`
	FeelsLike     string `json:"feels_like"`
	Humidity      string `json:"humidity"`
	WindSpeed     string `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	Pressure      string `json:"pressure"`
	Visibility    string `json:"visibility"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	LastUpdated   string `json:"last_updated"`
	UpdatedAt     string `json:"updated_at"` // RFC 3339, UTC
}

type Presenter struct {
	IconBaseURL string
}

func NewPresenter(iconBaseURL string) *Presenter {
	if iconBaseURL == "" {
		iconBaseURL = DefaultIconBaseURL
	}
	return &Presenter{IconBaseURL: strings.TrimRight(iconBaseURL, "/")}
}

// Present formats result for display, stamping now as the update time. Any missing
// section of the payload fails the whole view; a partial view is never returned.
func (p *Presenter) Present(result *providers.WeatherResult, now time.Time) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			view, err = View{}, fmt.Errorf("%w: %v", ErrMalformedResult, r)
		}
	}()

	if err := validate(result); err != nil {
		return View{}, err
	}

	condition := result.Weather[0]

	return View{
		City:          result.Name,
		Country:       result.Sys.Country,
		IconURL:       fmt.Sprintf("%s/%s@4x.png", p.IconBaseURL, condition.Icon),
		IconAlt:       condition.Description,
		Description:   condition.Description,
		Temperature:   formatter.Temperature(result.Main.Temp),
		FeelsLike:     formatter.Degrees(result.Main.FeelsLike),
		Humidity:      formatter.Humidity(result.Main.Humidity),
		WindSpeed:     formatter.WindSpeed(result.Wind.Speed),
		WindDirection: formatter.CompassDirection(result.Wind.Deg),
		Pressure:      formatter.Pressure(result.Main.Pressure),
		Visibility:    formatter.Visibility(result.Visibility),
		Sunrise:       formatter.ClockTime(result.Sys.Sunrise, result.Timezone),
		Sunset:        formatter.ClockTime(result.Sys.Sunset, result.Timezone),
		LastUpdated:   formatter.LastUpdated(now),
		UpdatedAt:     now.UTC().Format(time.RFC3339),
	}, nil
}

func validate(result *providers.WeatherResult) error {
	switch {
	case result == nil:
		return fmt.Errorf("%w: empty result", ErrMalformedResult)
	case len(result.Weather) == 0:
		return fmt.Errorf("%w: missing weather conditions", ErrMalformedResult)
	case result.Main == nil:
		return fmt.Errorf("%w: missing main readings", ErrMalformedResult)
	case result.Wind == nil:
		return fmt.Errorf("%w: missing wind readings", ErrMalformedResult)
	case result.Sys == nil:
		return fmt.Errorf("%w: missing sys section", ErrMalformedResult)
	}
	return nil
}
