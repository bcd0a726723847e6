package widget

import (
	"errors"

	"ulascansenturk/weather-widget/internal/locator"
	"ulascansenturk/weather-widget/internal/providers"
)

const (
	MsgEmptyCity           = "Please enter a city name"
	MsgCityNotFound        = "City not found. Please check the spelling and try again."
	MsgInvalidCredential   = "Invalid API key. Please check your configuration."
	MsgFetchFailed         = "Failed to fetch weather data. Please try again."
	MsgLocationFetchFailed = "Failed to fetch weather data for your location."
	MsgUnexpected          = "An unexpected error occurred. Please try again."
)

// MessageFor turns any failure of a widget action into the text shown to the user.
func MessageFor(err error, query providers.Query) string {
	if errors.Is(err, locator.ErrEmptyCity) {
		return MsgEmptyCity
	}
	if geoErr, ok := locator.AsGeolocationError(err); ok {
		return geoErr.Message()
	}

	switch {
	case errors.Is(err, providers.ErrCityNotFound):
		return MsgCityNotFound
	case errors.Is(err, providers.ErrInvalidCredential):
		return MsgInvalidCredential
	case errors.Is(err, providers.ErrFetchFailed):
		if query.IsCoordinates() {
			return MsgLocationFetchFailed
		}
		return MsgFetchFailed
	default:
		return MsgUnexpected
	}
}
