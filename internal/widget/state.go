package widget

import (
	"fmt"
)

type StateKind int

const (
	Idle StateKind = iota
	Loading
	Error
	Loaded
)

func (k StateKind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Loaded:
		return "loaded"
	default:
		return "idle"
	}
}

func (k StateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *StateKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*k = Idle
	case "loading":
		*k = Loading
	case "error":
		*k = Error
	case "loaded":
		*k = Loaded
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}

// UIState is the single value deciding which panel the widget shows.
// Message is set only for Error, View only for Loaded.
type UIState struct {
	Kind    StateKind `json:"kind"`
	Message string    `json:"message,omitempty"`
	View    *View     `json:"view,omitempty"`
	Token   uint64    `json:"token"`
}

func (s UIState) IsIdle() bool    { return s.Kind == Idle }
func (s UIState) IsLoading() bool { return s.Kind == Loading }
func (s UIState) IsError() bool   { return s.Kind == Error }
func (s UIState) IsLoaded() bool  { return s.Kind == Loaded }

func loadingState() UIState {
	return UIState{Kind: Loading}
}

func errorState(message string) UIState {
	return UIState{Kind: Error, Message: message}
}

func loadedState(view View) UIState {
	return UIState{Kind: Loaded, View: &view}
}
