package migrations

import (
	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateQuestionsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		configslog.Log.Error("failed to migrate questions table", zap.Error(err))
		return err
	}
	return nil
}
