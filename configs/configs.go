package configs

import (
	"os"

	"formbox.link/configs/configsdatabase"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv pulls in a local .env file when present. Deployed environments
// provide real env vars, so a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetDB returns the shared database connection.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// JWTSecret returns the signing secret for access tokens. The fallback keeps
// local development and tests working without a .env file; production must
// set JWT_SECRET.
func JWTSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("formbox-dev-secret")
}

// GetEnv reads an environment variable with an optional default.
func GetEnv(key string, defaultValue ...string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}
