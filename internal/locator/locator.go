package locator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ulascansenturk/weather-widget/internal/providers"
)

// ErrEmptyCity is returned for manual entries that are blank once trimmed.
var ErrEmptyCity = errors.New("please enter a city name")

type Position struct {
	Lat float64
	Lon float64
}

// Geolocator resolves the device position once. Implementations must honour ctx.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// CityQuery validates manual entry and turns it into a provider query.
func CityQuery(input string) (providers.Query, error) {
	city := strings.TrimSpace(input)
	if city == "" {
		return providers.Query{}, ErrEmptyCity
	}
	return providers.CityQuery(city), nil
}

// Resolve asks g for the device position and turns it into a provider query.
func Resolve(ctx context.Context, g Geolocator) (providers.Query, error) {
	if g == nil {
		return providers.Query{}, &GeolocationError{Reason: Unsupported}
	}

	pos, err := g.CurrentPosition(ctx)
	if err != nil {
		return providers.Query{}, fmt.Errorf("locate device: %w", err)
	}

	return providers.CoordinatesQuery(pos.Lat, pos.Lon), nil
}
