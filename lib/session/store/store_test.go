package sessionstore

import (
	"path/filepath"
	"testing"

	"hours-dashboard/db"
	"hours-dashboard/lib/session"
	"hours-dashboard/models"
	dbmodels "hours-dashboard/models/db"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "dashboard.db")

	t.Run(`survives reopening`, func(t *testing.T) {
		conn, err := db.Connect(path)
		require.Nil(t, err)
		m := session.NewManager(NewInstance(conn))
		require.Nil(t, m.SaveToken("token-1"))
		require.Nil(t, m.SaveTheme(models.DarkTheme))
		require.Nil(t, m.SaveToken("token-2"))
		require.Nil(t, db.Close(conn))

		conn, err = db.Connect(path)
		require.Nil(t, err)
		defer db.Close(conn)
		m = session.NewManager(NewInstance(conn))
		require.Equal(t, "token-2", m.Token())
		require.Equal(t, models.DarkTheme, m.Theme())

		var rows []dbmodels.ClientState
		require.Nil(t, conn.Order("key").Find(&rows).Error)
		require.Len(t, rows, 2)
		require.Equal(t, session.TokenKey, rows[0].Key)
		require.Equal(t, "token-2", rows[0].Value)
		require.False(t, rows[0].UpdatedAt.IsZero())
	})
	t.Run(`delete missing key`, func(t *testing.T) {
		conn, err := db.Connect(path)
		require.Nil(t, err)
		defer db.Close(conn)
		storage := NewInstance(conn)
		require.Nil(t, storage.Delete("missing"))
		_, found, err := storage.Get("missing")
		require.Nil(t, err)
		require.False(t, found)
	})
}
