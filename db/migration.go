package db

import (
	dbmodels "hours-dashboard/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&dbmodels.ClientState{}); err != nil {
		return errors.Wrap(err, "unable to migrate client_state")
	}
	log.Debug("state database migrated")
	return nil
}
