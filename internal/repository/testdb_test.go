package repository

import (
	"testing"

	"tablero/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.User{},
		&models.Report{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Reaction{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", IsAdmin: isAdmin, IsActive: true}
	if err := u.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func createReport(t *testing.T, db *gorm.DB, name, powerbiID string) *models.Report {
	t.Helper()
	r := &models.Report{
		Name:               name,
		PowerBIReportID:    powerbiID,
		PowerBIWorkspaceID: "ws-1",
		IsActive:           true,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("create report %s: %v", name, err)
	}
	return r
}
