// Package authstore holds who is logged in, the theme and the unread badge.
package authstore

import (
	"context"
	"sync"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/rbac"
	"hours-dashboard/lib/session"
	"hours-dashboard/lib/store"
	"hours-dashboard/models"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	log "github.com/sirupsen/logrus"
)

type State struct {
	User            *userapimodels.User
	IsAuthenticated bool
	Theme           models.Theme
	UnreadMessages  int
	UnreadGroups    []trackerapimodels.UnreadCommentsGroup
	IsLoading       bool
	Error           string
	// Version grows with every change; listeners never get a lower one after a higher one.
	Version         uint64
}

type Store struct {
	auth     backend.AuthProvider
	comments backend.CommentsProvider
	session  *session.Manager

	mu            sync.RWMutex
	user          *userapimodels.User
	authenticated bool
	theme         models.Theme
	unread        int
	unreadGroups  []trackerapimodels.UnreadCommentsGroup
	loading       int
	err           string

	version    uint64
	listeners  store.Listeners[State]
	stopExpire func()
}

// New builds the store around the session. It listens for session expiry until Teardown.
func New(b backend.Backend, sessionManager *session.Manager) *Store {
	s := &Store{
		auth:     b.Auth,
		comments: b.Comments,
		session:  sessionManager,
		theme:    sessionManager.Theme(),
	}
	s.stopExpire = sessionManager.OnExpire(s.expired)
	return s
}

func (s *Store) expired() {
	log.Info("auth store: session expired, logging out")
	s.update(func() {
		s.reset()
		s.err = backend.ErrUnauthorized.Error()
	})
}

// reset drops the identity. Callers hold s.mu.
func (s *Store) reset() {
	s.user = nil
	s.authenticated = false
	s.unread = 0
	s.unreadGroups = nil
}

func (s *Store) snapshot() State {
	groups := make([]trackerapimodels.UnreadCommentsGroup, 0, len(s.unreadGroups))
	for _, g := range s.unreadGroups {
		groups = append(groups, g.Clone())
	}
	return State{
		User:            s.user.Clone(),
		IsAuthenticated: s.authenticated,
		Theme:           s.theme,
		UnreadMessages:  s.unread,
		UnreadGroups:    groups,
		IsLoading:       s.loading > 0,
		Error:           s.err,
		Version:         s.version,
	}
}

func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	s.version++
	state := s.snapshot()
	s.mu.Unlock()
	s.listeners.Notify(state.Version, state)
}

func (s *Store) begin() {
	s.update(func() {
		s.loading++
		s.err = ""
	})
}

// done closes an operation started with begin; a nil opErr keeps the error field clear.
func (s *Store) done(opErr *store.OpError, apply func()) error {
	s.update(func() {
		s.loading--
		if opErr != nil {
			s.err = opErr.Message
			return
		}
		if apply != nil {
			apply()
		}
	})
	if opErr != nil {
		return opErr
	}
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.listeners.Add(fn)
}

func (s *Store) Teardown() {
	s.stopExpire()
	s.listeners.Clear()
}

func (s *Store) CurrentUser() *userapimodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Permissions of the current user; nobody logged in gets none.
func (s *Store) Permissions() models.UserPermissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserPermissions{}
	}
	return rbac.PermissionsFor(s.user.Role)
}

// InitializeAuth resolves the stored token into a user. It never fails: a token
// that does not resolve is cleared and the store stays logged out.
func (s *Store) InitializeAuth(ctx context.Context) {
	if s.session.Token() == "" {
		s.update(s.reset)
		return
	}
	s.begin()
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		log.WithError(err).Info("auth store: stored token rejected")
		if clearErr := s.session.ClearToken(); clearErr != nil {
			log.WithError(clearErr).Error("auth store: unable to clear token")
		}
		s.update(func() {
			s.loading--
			s.reset()
		})
		return
	}
	_ = s.done(nil, func() {
		s.user = user
		s.authenticated = true
	})
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	request := userapimodels.LoginRequest{Email: email, Password: password}
	if err := request.Validate(); err != nil {
		return err
	}
	s.begin()
	resp, err := s.auth.Login(ctx, request)
	if err != nil {
		return s.done(store.Fail("auth.login", "Login failed", err), nil)
	}
	if err = s.session.SaveToken(resp.Token); err != nil {
		return s.done(store.Fail("auth.login", "Login failed", err), nil)
	}
	user := resp.User
	log.WithField("user", user.ID).Debug("auth store: logged in")
	return s.done(nil, func() {
		s.user = &user
		s.authenticated = true
	})
}

// Logout always ends up logged out, even when the server call fails. Calling it twice is harmless.
func (s *Store) Logout(ctx context.Context) {
	if s.session.Token() != "" {
		if err := s.auth.Logout(ctx); err != nil {
			log.WithError(err).Info("auth store: server logout failed")
		}
	}
	if err := s.session.ClearToken(); err != nil {
		log.WithError(err).Error("auth store: unable to clear token")
	}
	s.update(func() {
		s.reset()
		s.err = ""
	})
}

func (s *Store) UpdateUserSettings(ctx context.Context, settings userapimodels.SettingsUpdate) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.begin()
	user, err := s.auth.UpdateSettings(ctx, settings)
	if err != nil {
		return s.done(store.Fail("auth.update_settings", "Failed to update settings", err), nil)
	}
	if settings.Theme != nil {
		if err = s.session.SaveTheme(*settings.Theme); err != nil {
			log.WithError(err).Error("auth store: unable to persist theme")
		}
	}
	return s.done(nil, func() {
		s.user = user
		if settings.Theme != nil {
			s.theme = *settings.Theme
		}
	})
}

// ToggleTheme flips light/dark and persists the choice.
func (s *Store) ToggleTheme() (models.Theme, error) {
	s.mu.RLock()
	next := s.theme.Toggle()
	s.mu.RUnlock()
	if err := s.session.SaveTheme(next); err != nil {
		return "", err
	}
	s.update(func() { s.theme = next })
	return next, nil
}

func (s *Store) SetUnreadMessages(n int) {
	if n < 0 {
		n = 0
	}
	s.update(func() { s.unread = n })
}

// RefreshUnread reloads the unread comment groups. It is polled, so it leaves the loading flag alone.
func (s *Store) RefreshUnread(ctx context.Context) error {
	groups, err := s.comments.Unread(ctx)
	if err != nil {
		return store.Fail("auth.refresh_unread", "Failed to load unread messages", err)
	}
	s.update(func() {
		s.unreadGroups = groups
		s.unread = trackerapimodels.CountUnread(groups)
	})
	return nil
}

func (s *Store) MarkCommentRead(ctx context.Context, commentID string, groupType trackerapimodels.GroupType) error {
	if err := groupType.Validate(); err != nil {
		return err
	}
	if err := s.comments.MarkRead(ctx, commentID, groupType); err != nil {
		opErr := store.Fail("auth.mark_read", "Failed to mark comment as read", err)
		s.update(func() { s.err = opErr.Message })
		return opErr
	}
	s.update(func() {
		groups := make([]trackerapimodels.UnreadCommentsGroup, 0, len(s.unreadGroups))
		for _, g := range s.unreadGroups {
			if g.Type != groupType {
				groups = append(groups, g)
				continue
			}
			kept := make([]trackerapimodels.UnreadComment, 0, len(g.Comments))
			for _, c := range g.Comments {
				if c.ID != commentID {
					kept = append(kept, c)
				}
			}
			if len(kept) > 0 {
				g.Comments = kept
				groups = append(groups, g)
			}
		}
		s.unreadGroups = groups
		s.unread = trackerapimodels.CountUnread(groups)
	})
	return nil
}

func (s *Store) MarkAllRead(ctx context.Context, groupID string, groupType trackerapimodels.GroupType) error {
	if err := groupType.Validate(); err != nil {
		return err
	}
	if err := s.comments.MarkAllRead(ctx, groupID, groupType); err != nil {
		opErr := store.Fail("auth.mark_all_read", "Failed to mark comments as read", err)
		s.update(func() { s.err = opErr.Message })
		return opErr
	}
	s.update(func() {
		groups := make([]trackerapimodels.UnreadCommentsGroup, 0, len(s.unreadGroups))
		for _, g := range s.unreadGroups {
			if g.Type == groupType && g.GroupID() == groupID {
				continue
			}
			groups = append(groups, g)
		}
		s.unreadGroups = groups
		s.unread = trackerapimodels.CountUnread(groups)
	})
	return nil
}
