package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"ulascansenturk/weather-widget/internal/widget"
)

// Factory builds the controller for a freshly created session.
type Factory func(ctx context.Context, sessionID string) *widget.Controller

type sessionEntry struct {
	controller *widget.Controller
	expiration time.Time
}

// Manager keeps one widget controller per browser session. Entries expire after
// ttl of inactivity and are swept every cleanupInterval.
type Manager struct {
	sessions        map[string]sessionEntry
	mutex           sync.Mutex
	factory         Factory
	ttl             time.Duration
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewManager(factory Factory, ttl, cleanupInterval time.Duration) *Manager {
	m := &Manager{
		sessions:        make(map[string]sessionEntry),
		factory:         factory,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go m.startCleanup()

	return m
}

// Get returns the live controller for id and extends its lifetime.
func (m *Manager) Get(id string) (*widget.Controller, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.sessions[id]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiration) {
		delete(m.sessions, id)
		return nil, false
	}

	entry.expiration = time.Now().Add(m.ttl)
	m.sessions[id] = entry

	return entry.controller, true
}

// GetOrCreate returns the live controller for id. Any other id, including a
// well-formed one this manager never issued, gets a freshly minted session. The
// returned id is the one to hand back to the browser.
func (m *Manager) GetOrCreate(ctx context.Context, id string) (string, *widget.Controller) {
	if controller, ok := m.Get(id); ok {
		return id, controller
	}

	id = uuid.NewString()
	controller := m.factory(ctx, id)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessions[id] = sessionEntry{
		controller: controller,
		expiration: time.Now().Add(m.ttl),
	}

	return id, controller
}

func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sessions)
}

func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.sessions {
				if now.After(v.expiration) {
					delete(m.sessions, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
