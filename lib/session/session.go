package session

import (
	"sync"

	"hours-dashboard/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	TokenKey = "auth_token"
	ThemeKey = "theme"
)

// Storage is the durable key/value place the session lives in.
type Storage interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Manager owns the persisted client state: the auth token and the theme.
// Expire is the process-wide "session expired" signal.
type Manager struct {
	mu        sync.Mutex
	storage   Storage
	nextID    int
	listeners map[int]func()
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		storage:   storage,
		listeners: map[int]func(){},
	}
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, _, err := m.storage.Get(TokenKey)
	if err != nil {
		log.WithError(err).Error("unable to read stored token")
		return ""
	}
	return token
}

func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Wrap(m.storage.Set(TokenKey, token), "unable to store token")
}

func (m *Manager) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Wrap(m.storage.Delete(TokenKey), "unable to clear token")
}

func (m *Manager) Theme() models.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	theme, _, err := m.storage.Get(ThemeKey)
	if err != nil {
		log.WithError(err).Error("unable to read stored theme")
	}
	return models.ParseTheme(theme)
}

func (m *Manager) SaveTheme(theme models.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Wrap(m.storage.Set(ThemeKey, string(theme)), "unable to store theme")
}

// Expire clears the stored token and notifies subscribers. Without a stored
// token it does nothing, so repeated 401s notify once.
func (m *Manager) Expire() {
	m.mu.Lock()
	token, _, err := m.storage.Get(TokenKey)
	if err != nil || token == "" {
		m.mu.Unlock()
		return
	}
	if err = m.storage.Delete(TokenKey); err != nil {
		log.WithError(err).Error("unable to clear expired token")
	}
	listeners := make([]func(), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	log.Info("session expired")
	for _, fn := range listeners {
		fn()
	}
}

// OnExpire subscribes fn to session expiry and returns the unsubscribe func.
func (m *Manager) OnExpire(fn func()) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}
