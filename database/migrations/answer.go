package migrations

import (
	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateAnswersTables migrates answers and question_answers together; the
// join table is meaningless without its parent.
func MigrateAnswersTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Answer{}, &models.QuestionAnswer{}); err != nil {
		configslog.Log.Error("failed to migrate answers tables", zap.Error(err))
		return err
	}
	return nil
}
