package initializers

import (
	"hours-dashboard/db"
	"hours-dashboard/lib/session"
	sessionstore "hours-dashboard/lib/session/store"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InitSessionStorage keeps the session in the state database at path. An empty
// path or an unusable database falls back to memory for this run only.
func InitSessionStorage(path string) (session.Storage, *gorm.DB) {
	if path == "" {
		return session.NewMemoryStorage(), nil
	}
	conn, err := db.Connect(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("state database unavailable, session will not persist")
		return session.NewMemoryStorage(), nil
	}
	return sessionstore.NewInstance(conn), conn
}
