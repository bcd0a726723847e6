package locator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BrowserReport is the outcome of navigator.geolocation.getCurrentPosition as
// posted back by the widget page.
type BrowserReport struct {
	Latitude    string
	Longitude   string
	ErrorCode   string
	Unsupported bool
}

func (r BrowserReport) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, &GeolocationError{Reason: Timeout, Err: err}
	}

	if r.Unsupported {
		return Position{}, &GeolocationError{Reason: Unsupported}
	}

	if code := strings.TrimSpace(r.ErrorCode); code != "" {
		n, err := strconv.Atoi(code)
		if err != nil {
			return Position{}, &GeolocationError{Reason: Unknown, Err: fmt.Errorf("bad error code %q", code)}
		}
		return Position{}, &GeolocationError{Reason: ReasonFromCode(n)}
	}

	lat, err := parseCoordinate(r.Latitude, 90)
	if err != nil {
		return Position{}, &GeolocationError{Reason: PositionUnavailable, Err: fmt.Errorf("latitude: %w", err)}
	}
	lon, err := parseCoordinate(r.Longitude, 180)
	if err != nil {
		return Position{}, &GeolocationError{Reason: PositionUnavailable, Err: fmt.Errorf("longitude: %w", err)}
	}

	return Position{Lat: lat, Lon: lon}, nil
}

var errMissingCoordinate = errors.New("missing")

func parseCoordinate(raw string, limit float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errMissingCoordinate
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("%v out of range", v)
	}

	return v, nil
}
