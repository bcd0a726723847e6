package theme

import (
	"context"
	"errors"
	"fmt"
)

type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// ErrNotFound is returned by a Store when the key has never been written.
var ErrNotFound = errors.New("preference not found")

// Store is a small persistent key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Parse accepts only the persisted spellings and falls back to Light.
func Parse(value string) Preference {
	if Preference(value) == Dark {
		return Dark
	}
	return Light
}

func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) IsDark() bool {
	return p == Dark
}

func (p Preference) String() string {
	return string(p)
}

// Key scopes the single theme key to one widget session.
func Key(sessionID string) string {
	if sessionID == "" {
		return "theme"
	}
	return sessionID + ":theme"
}

// Load reads the stored preference. A missing key is Light, not an error.
func Load(ctx context.Context, store Store, sessionID string) (Preference, error) {
	value, err := store.Get(ctx, Key(sessionID))
	if errors.Is(err, ErrNotFound) {
		return Light, nil
	}
	if err != nil {
		return Light, fmt.Errorf("load theme: %w", err)
	}
	return Parse(value), nil
}

func Save(ctx context.Context, store Store, sessionID string, p Preference) error {
	if err := store.Set(ctx, Key(sessionID), p.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
