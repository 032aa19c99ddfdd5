package session

import (
	"testing"

	"hours-dashboard/models"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Run(`token round trip`, func(t *testing.T) {
		m := NewManager(NewMemoryStorage())
		require.Equal(t, "", m.Token())
		require.Nil(t, m.SaveToken("abc"))
		require.Equal(t, "abc", m.Token())
		require.Nil(t, m.ClearToken())
		require.Equal(t, "", m.Token())
	})
	t.Run(`theme defaults to light`, func(t *testing.T) {
		m := NewManager(NewMemoryStorage())
		require.Equal(t, models.LightTheme, m.Theme())
		require.Nil(t, m.SaveTheme(models.DarkTheme))
		require.Equal(t, models.DarkTheme, m.Theme())
	})
	t.Run(`expire notifies once per stored token`, func(t *testing.T) {
		m := NewManager(NewMemoryStorage())
		calls := 0
		cancel := m.OnExpire(func() { calls++ })

		m.Expire()
		require.Equal(t, 0, calls)

		require.Nil(t, m.SaveToken("abc"))
		m.Expire()
		m.Expire()
		require.Equal(t, 1, calls)
		require.Equal(t, "", m.Token())

		cancel()
		require.Nil(t, m.SaveToken("def"))
		m.Expire()
		require.Equal(t, 1, calls)
	})
	t.Run(`expire keeps theme`, func(t *testing.T) {
		m := NewManager(NewMemoryStorage())
		require.Nil(t, m.SaveTheme(models.DarkTheme))
		require.Nil(t, m.SaveToken("abc"))
		m.Expire()
		require.Equal(t, models.DarkTheme, m.Theme())
	})
}
