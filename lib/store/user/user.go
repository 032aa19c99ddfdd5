// Package userstore caches the user directory for the user management views.
package userstore

import (
	"context"
	"sync"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/store"
	userapimodels "hours-dashboard/models/api/user"
)

type State struct {
	Users     []userapimodels.User
	Selected  *userapimodels.User
	IsLoading bool
	Error     string
	Version   uint64
}

type Store struct {
	users backend.UsersProvider

	mu       sync.RWMutex
	byID     map[string]userapimodels.User
	order    []string
	selected *userapimodels.User
	loading  int
	err      string

	version   uint64
	listeners store.Listeners[State]
}

func New(b backend.Backend) *Store {
	return &Store{
		users: b.Users,
		byID:  map[string]userapimodels.User{},
	}
}

func (s *Store) list() []userapimodels.User {
	result := make([]userapimodels.User, 0, len(s.order))
	for _, id := range s.order {
		u := s.byID[id]
		result = append(result, *u.Clone())
	}
	return result
}

func (s *Store) snapshot() State {
	return State{
		Users:     s.list(),
		Selected:  s.selected.Clone(),
		IsLoading: s.loading > 0,
		Error:     s.err,
		Version:   s.version,
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

// put inserts or replaces a user and refreshes the selection if it is the same user. Callers hold s.mu.
func (s *Store) put(user userapimodels.User) {
	if _, ok := s.byID[user.ID]; !ok {
		s.order = append(s.order, user.ID)
	}
	s.byID[user.ID] = *user.Clone()
	if s.selected != nil && s.selected.ID == user.ID {
		s.selected = user.Clone()
	}
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
	s.listeners.Clear()
}

func (s *Store) Users() []userapimodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list()
}

func (s *Store) FetchUsers(ctx context.Context) error {
	s.begin()
	users, err := s.users.List(ctx)
	if err != nil {
		return s.done(store.Fail("users.fetch", "Failed to load users", err), nil)
	}
	return s.done(nil, func() {
		s.byID = make(map[string]userapimodels.User, len(users))
		s.order = make([]string, 0, len(users))
		for _, u := range users {
			s.put(u)
		}
		if s.selected != nil {
			if _, ok := s.byID[s.selected.ID]; !ok {
				s.selected = nil
			}
		}
	})
}

func (s *Store) FetchUser(ctx context.Context, userID string) (*userapimodels.User, error) {
	s.begin()
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, s.done(store.Fail("users.fetch_one", "Failed to load user", err), nil)
	}
	err = s.done(nil, func() { s.put(*user) })
	return user, err
}

// SetSelectedUser selects a cached user; an empty id clears the selection.
func (s *Store) SetSelectedUser(userID string) error {
	s.mu.RLock()
	u, ok := s.byID[userID]
	s.mu.RUnlock()
	if userID != "" && !ok {
		return backend.NotFound("user", userID)
	}
	s.update(func() {
		if userID == "" {
			s.selected = nil
			return
		}
		s.selected = u.Clone()
	})
	return nil
}

func (s *Store) SelectedUser() *userapimodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Clone()
}

func (s *Store) CreateUser(ctx context.Context, request userapimodels.CreateUser) (*userapimodels.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	user, err := s.users.Create(ctx, request)
	if err != nil {
		return nil, s.done(store.Fail("users.create", "Failed to create user", err), nil)
	}
	err = s.done(nil, func() { s.put(*user) })
	return user, err
}

func (s *Store) UpdateUser(ctx context.Context, userID string, request userapimodels.UpdateUser) (*userapimodels.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	user, err := s.users.Update(ctx, userID, request)
	if err != nil {
		return nil, s.done(store.Fail("users.update", "Failed to update user", err), nil)
	}
	err = s.done(nil, func() { s.put(*user) })
	return user, err
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.begin()
	if err := s.users.Delete(ctx, userID); err != nil {
		return s.done(store.Fail("users.delete", "Failed to delete user", err), nil)
	}
	return s.done(nil, func() {
		delete(s.byID, userID)
		order := make([]string, 0, len(s.order))
		for _, id := range s.order {
			if id != userID {
				order = append(order, id)
			}
		}
		s.order = order
		if s.selected != nil && s.selected.ID == userID {
			s.selected = nil
		}
	})
}

// UpdatePassword changes a password. Nothing cached changes.
func (s *Store) UpdatePassword(ctx context.Context, userID string, request userapimodels.PasswordUpdate) error {
	if err := request.Validate(); err != nil {
		return err
	}
	s.begin()
	if err := s.users.UpdatePassword(ctx, userID, request); err != nil {
		return s.done(store.Fail("users.update_password", "Failed to update password", err), nil)
	}
	return s.done(nil, nil)
}
