package migrations

import (
	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFormsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Form{}); err != nil {
		configslog.Log.Error("failed to migrate forms table", zap.Error(err))
		return err
	}
	return nil
}
