// Package testdb spins up an isolated in-memory database with the full
// schema for tests. The sqlite driver is pure Go, so the suite needs neither
// cgo nor a running PostgreSQL.
package testdb

import (
	"fmt"
	"testing"

	"formbox.link/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open returns a fresh database migrated to the current schema. Each test
// gets its own named in-memory instance, so tests never see each other's rows.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test database handle: %v", err)
	}
	// A single connection keeps the named in-memory database alive for the
	// whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
