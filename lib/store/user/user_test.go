package userstore

import (
	"context"
	"testing"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/session"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, email string) *Store {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	manager := session.NewManager(session.NewMemoryStorage())
	b := mock.NewInstance(dataset, manager, 0, authutils.NewInstance("test-secret", time.Hour))
	resp, err := b.Auth.Login(context.Background(), userapimodels.LoginRequest{Email: email, Password: mock.DemoPassword})
	require.NoError(t, err)
	require.NoError(t, manager.SaveToken(resp.Token))
	s := New(b)
	t.Cleanup(s.Teardown)
	return s
}

func TestUsers(t *testing.T) {
	ctx := context.Background()

	t.Run(`crud`, func(t *testing.T) {
		s := newStore(t, mock.DemoEmail)
		require.NoError(t, s.FetchUsers(ctx))
		require.Len(t, s.Users(), 3)

		created, err := s.CreateUser(ctx, userapimodels.CreateUser{
			Name:     "Nina Ops",
			Email:    "nina@example.com",
			Role:     models.ManagerRole,
			Password: "secret1",
		})
		require.NoError(t, err)
		require.Len(t, s.Users(), 4)
		require.NoError(t, s.SetSelectedUser(created.ID))

		name := "Nina Operations"
		_, err = s.UpdateUser(ctx, created.ID, userapimodels.UpdateUser{Name: &name})
		require.NoError(t, err)
		require.Equal(t, name, s.SelectedUser().Name)

		require.NoError(t, s.DeleteUser(ctx, created.ID))
		require.Len(t, s.Users(), 3)
		require.Nil(t, s.SelectedUser())
	})

	t.Run(`duplicate email`, func(t *testing.T) {
		s := newStore(t, mock.DemoEmail)
		require.NoError(t, s.FetchUsers(ctx))
		_, err := s.CreateUser(ctx, userapimodels.CreateUser{Name: "Copy", Email: mock.DemoEmail, Role: models.RegularUserRole})
		require.True(t, errors.Is(err, backend.ErrConflict))
		require.NotEmpty(t, s.State().Error)
		require.Len(t, s.Users(), 3)
	})

	t.Run(`managers cannot create users`, func(t *testing.T) {
		s := newStore(t, "mike@example.com")
		_, err := s.CreateUser(ctx, userapimodels.CreateUser{Name: "X", Email: "x@example.com", Role: models.RegularUserRole})
		require.True(t, errors.Is(err, backend.ErrForbidden))
	})

	t.Run(`own password`, func(t *testing.T) {
		s := newStore(t, "sarah@example.com")
		err := s.UpdatePassword(ctx, "2", userapimodels.PasswordUpdate{CurrentPassword: "wrong", NewPassword: "longenough"})
		require.Error(t, err)
		require.Equal(t, "Current password is incorrect", s.State().Error)

		require.NoError(t, s.UpdatePassword(ctx, "2", userapimodels.PasswordUpdate{CurrentPassword: mock.DemoPassword, NewPassword: "longenough"}))
		require.Empty(t, s.State().Error)
	})
}
