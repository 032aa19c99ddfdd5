package authstore

import (
	"context"
	"testing"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/session"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *session.Manager) {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	manager := session.NewManager(session.NewMemoryStorage())
	b := mock.NewInstance(dataset, manager, 0, authutils.NewInstance("test-secret", time.Hour))
	s := New(b, manager)
	t.Cleanup(s.Teardown)
	return s, manager
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run(`wrong credentials`, func(t *testing.T) {
		s, manager := newStore(t)
		err := s.Login(ctx, mock.DemoEmail, "wrong")
		require.Error(t, err)
		require.True(t, errors.Is(err, backend.ErrInvalidCredentials))

		state := s.State()
		require.Equal(t, "Invalid credentials", state.Error)
		require.False(t, state.IsAuthenticated)
		require.False(t, state.IsLoading)
		require.Empty(t, manager.Token())
	})

	t.Run(`validation happens before the call`, func(t *testing.T) {
		s, _ := newStore(t)
		calls := 0
		s.Subscribe(func(State) { calls++ })
		require.Error(t, s.Login(ctx, "", "x"))
		require.Zero(t, calls)
	})

	t.Run(`success stores the token`, func(t *testing.T) {
		s, manager := newStore(t)
		var seen []State
		s.Subscribe(func(st State) { seen = append(seen, st) })

		require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))
		require.NotEmpty(t, manager.Token())
		state := s.State()
		require.True(t, state.IsAuthenticated)
		require.Equal(t, models.AdminRole, state.User.Role)
		require.True(t, s.Permissions().CanManageUsers)

		require.True(t, seen[0].IsLoading)
		require.False(t, seen[len(seen)-1].IsLoading)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	s, manager := newStore(t)
	require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))

	s.Logout(ctx)
	s.Logout(ctx)

	state := s.State()
	require.False(t, state.IsAuthenticated)
	require.Nil(t, state.User)
	require.Empty(t, manager.Token())
	require.Equal(t, models.UserPermissions{}, s.Permissions())
}

func TestInitializeAuth(t *testing.T) {
	ctx := context.Background()

	t.Run(`valid token`, func(t *testing.T) {
		s, manager := newStore(t)
		require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))
		token := manager.Token()

		fresh := New(mock.NewInstance(mustDataset(t), manager, 0, authutils.NewInstance("test-secret", time.Hour)), manager)
		defer fresh.Teardown()
		require.NoError(t, manager.SaveToken(token))
		fresh.InitializeAuth(ctx)
		require.True(t, fresh.IsAuthenticated())
		require.Equal(t, "1", fresh.CurrentUser().ID)
	})

	t.Run(`bad token is cleared`, func(t *testing.T) {
		s, manager := newStore(t)
		require.NoError(t, manager.SaveToken("garbage"))
		s.InitializeAuth(ctx)
		require.False(t, s.IsAuthenticated())
		require.Empty(t, manager.Token())
		require.False(t, s.State().IsLoading)
	})

	t.Run(`no token`, func(t *testing.T) {
		s, _ := newStore(t)
		s.InitializeAuth(ctx)
		require.False(t, s.IsAuthenticated())
	})
}

func mustDataset(t *testing.T) *mock.Dataset {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	return dataset
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	s, manager := newStore(t)
	require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))

	manager.Expire()
	state := s.State()
	require.False(t, state.IsAuthenticated)
	require.Nil(t, state.User)
	require.Equal(t, backend.ErrUnauthorized.Error(), state.Error)
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	s, manager := newStore(t)
	require.Equal(t, models.LightTheme, s.State().Theme)

	theme, err := s.ToggleTheme()
	require.NoError(t, err)
	require.Equal(t, models.DarkTheme, theme)
	require.Equal(t, models.DarkTheme, manager.Theme())

	require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))
	light := models.LightTheme
	notifications := false
	require.NoError(t, s.UpdateUserSettings(ctx, userapimodels.SettingsUpdate{Theme: &light, Notifications: &notifications}))
	require.Equal(t, models.LightTheme, s.State().Theme)
	require.Equal(t, models.LightTheme, manager.Theme())
	require.False(t, s.CurrentUser().Settings.Notifications)
}

func TestUnread(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	require.NoError(t, s.Login(ctx, mock.DemoEmail, mock.DemoPassword))

	require.NoError(t, s.RefreshUnread(ctx))
	state := s.State()
	require.Positive(t, state.UnreadMessages)
	require.Equal(t, trackerapimodels.CountUnread(state.UnreadGroups), state.UnreadMessages)

	before := state.UnreadMessages
	require.NoError(t, s.MarkAllRead(ctx, "DBY-362", trackerapimodels.TaskGroup))
	require.Equal(t, before-1, s.State().UnreadMessages)

	require.NoError(t, s.RefreshUnread(ctx))
	require.Equal(t, before-1, s.State().UnreadMessages)

	s.SetUnreadMessages(-3)
	require.Zero(t, s.State().UnreadMessages)
}
