package locator

import (
	"errors"
	"fmt"
)

type Reason int

const (
	Unknown Reason = iota
	PermissionDenied
	PositionUnavailable
	Timeout
	Unsupported
)

func (r Reason) String() string {
	switch r {
	case PermissionDenied:
		return "permission_denied"
	case PositionUnavailable:
		return "position_unavailable"
	case Timeout:
		return "timeout"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ReasonFromCode maps a W3C GeolocationPositionError code onto a Reason.
func ReasonFromCode(code int) Reason {
	switch code {
	case 1:
		return PermissionDenied
	case 2:
		return PositionUnavailable
	case 3:
		return Timeout
	default:
		return Unknown
	}
}

type GeolocationError struct {
	Reason Reason
	Err    error
}

func (e *GeolocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation %s: %v", e.Reason, e.Err)
	}
	return "geolocation " + e.Reason.String()
}

func (e *GeolocationError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user for this failure.
func (e *GeolocationError) Message() string {
	switch e.Reason {
	case PermissionDenied:
		return "Location access denied. Please enter a city name manually."
	case PositionUnavailable:
		return "Location information unavailable."
	case Timeout:
		return "Location request timed out."
	case Unsupported:
		return "Geolocation is not supported by your browser."
	default:
		return "An unknown error occurred."
	}
}

func AsGeolocationError(err error) (*GeolocationError, bool) {
	var geoErr *GeolocationError
	if errors.As(err, &geoErr) {
		return geoErr, true
	}
	return nil, false
}
