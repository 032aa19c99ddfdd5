package sessionstore

import (
	"hours-dashboard/lib/session"
	dbmodels "hours-dashboard/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type impl struct {
	db *gorm.DB
}

// NewInstance stores the session in the client_state table of db.
func NewInstance(db *gorm.DB) session.Storage {
	return &impl{db: db}
}

func (i *impl) Get(key string) (string, bool, error) {
	var rec dbmodels.ClientState
	tx := i.db.Where("key = ?", key).Limit(1).Find(&rec)
	if tx.Error != nil {
		return "", false, errors.Wrapf(tx.Error, "unable to read %s", key)
	}
	if tx.RowsAffected == 0 {
		return "", false, nil
	}
	return rec.Value, true, nil
}

func (i *impl) Set(key, value string) error {
	rec := dbmodels.ClientState{Key: key, Value: value}
	err := i.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	return errors.Wrapf(err, "unable to write %s", key)
}

func (i *impl) Delete(key string) error {
	err := i.db.Where("key = ?", key).Delete(&dbmodels.ClientState{}).Error
	return errors.Wrapf(err, "unable to delete %s", key)
}
