package migrations

import (
	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("failed to migrate users table", zap.Error(err))
		return err
	}
	return nil
}
