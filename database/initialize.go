package database

import (
	"formbox.link/configs/configslog"
	"formbox.link/database/migrations"
	"formbox.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders according to the flags.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("neither -migrate nor -seed given, nothing to do")
		return nil
	}

	if migrate {
		configslog.SLog.Info("running migrations...")
		if err := RunMigrationsInOrder(db); err != nil {
			configslog.Log.Error("migration failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("migrations complete")
	}

	if seed {
		configslog.SLog.Info("running seeders...")
		if err := RunSeeders(db); err != nil {
			configslog.Log.Error("seeding failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("seeders complete")
	}
	return nil
}

// RunMigrationsInOrder migrates parents before children so the foreign-key
// constraints can be created.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateFormsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateQuestionsTable(db); err != nil {
		return err
	}
	return migrations.MigrateAnswersTables(db)
}

// RunSeeders runs every seeder. Each one is idempotent.
func RunSeeders(db *gorm.DB) error {
	return seeders.SeedAdminUser(db)
}
