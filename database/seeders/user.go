package seeders

import (
	"errors"

	"formbox.link/configs"
	"formbox.link/configs/configslog"
	"formbox.link/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the initial account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Existing accounts are left untouched, so re-running is safe.
func SeedAdminUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@formbox.link")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if password == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("admin user already present: %s", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:         configs.GetEnv("ADMIN_NAME", "Admin"),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("admin user seeded: %s", email)
	return nil
}
