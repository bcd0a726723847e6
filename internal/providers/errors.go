package providers

import (
	"errors"
	"fmt"
)

var (
	ErrCityNotFound      = errors.New("city not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrFetchFailed       = errors.New("weather fetch failed")
)

type FetchErrorKind int

const (
	FetchFailed FetchErrorKind = iota
	FetchNotFound
	FetchInvalidCredential
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchNotFound:
		return "not_found"
	case FetchInvalidCredential:
		return "invalid_credential"
	default:
		return "failed"
	}
}

// FetchError is returned for every failed provider call. Status is zero when
// no HTTP response was received.
type FetchError struct {
	Kind   FetchErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.sentinel(), e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *FetchError) sentinel() error {
	switch e.Kind {
	case FetchNotFound:
		return ErrCityNotFound
	case FetchInvalidCredential:
		return ErrInvalidCredential
	default:
		return ErrFetchFailed
	}
}

// FetchErrorKindOf classifies err, treating anything that is not a FetchError as a failure.
func FetchErrorKindOf(err error) FetchErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return FetchFailed
}
