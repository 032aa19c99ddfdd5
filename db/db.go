package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Connect opens the client state database at path, creating the file and its schema if needed.
func Connect(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "unable to create state directory")
		}
	}
	dsn := path + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gorm_logrus.New()})
	if err != nil {
		return nil, errors.Wrap(err, "unable to open state database")
	}
	if err = AutoMigrateDB(db); err != nil {
		Close(db)
		return nil, err
	}
	log.WithField("path", path).Debug("state database connected")
	return db, nil
}

func PingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "unable to get state database handle")
	}
	return sqlDB.Close()
}
