package database

import (
	"log"
	"strings"

	"tablero/config"
	"tablero/internal/domain"
	"tablero/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the database. A DSN containing a tcp() host section is treated
// as MySQL; anything else is a sqlite file path.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector := sqlite.Open(cfg.DSN)
	if strings.Contains(cfg.DSN, "@tcp(") {
		dialector = mysql.Open(cfg.DSN)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Report{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Reaction{},
	)
}

// Seed inserts the initial admin and demo users, the default report and a
// couple of sample comments and reactions. Each block is idempotent.
func Seed(db *gorm.DB) {
	admin := seedUser(db, "admin", "admin123", "admin@example.com", true)
	user := seedUser(db, "user", "user123", "user@example.com", false)

	var report models.Report
	err := db.Where("powerbi_report_id = ?", domain.DefaultPowerBIReportID).First(&report).Error
	if err != nil {
		report = models.Report{
			Name:               domain.DefaultReportName,
			Description:        domain.DefaultReportDescription,
			PowerBIReportID:    domain.DefaultPowerBIReportID,
			PowerBIWorkspaceID: domain.DefaultPowerBIWorkspace,
			IsActive:           true,
		}
		if err := db.Create(&report).Error; err != nil {
			log.Printf("[seed] default report: %v", err)
			return
		}
	}
	if admin == nil || user == nil {
		return
	}

	var commentCount int64
	db.Model(&models.Comment{}).Count(&commentCount)
	if commentCount == 0 {
		samples := []models.Comment{
			{UserID: user.ID, ReportID: report.ID, Content: "Excelente análisis de ventas. Los datos del Q4 muestran una tendencia muy positiva.", Likes: 5, IsActive: true},
			{UserID: admin.ID, ReportID: report.ID, Content: "Gracias por el feedback. Hemos actualizado el dashboard con métricas adicionales.", Likes: 3, IsActive: true},
		}
		if err := db.Create(&samples).Error; err != nil {
			log.Printf("[seed] comments: %v", err)
		}
	}

	var reactionCount int64
	db.Model(&models.Reaction{}).Count(&reactionCount)
	if reactionCount == 0 {
		samples := []models.Reaction{
			{UserID: user.ID, ReportID: report.ID, ReactionType: domain.ReactionMeInteresa},
			{UserID: admin.ID, ReportID: report.ID, ReactionType: domain.ReactionAporta},
		}
		if err := db.Create(&samples).Error; err != nil {
			log.Printf("[seed] reactions: %v", err)
		}
	}
}

func seedUser(db *gorm.DB, username, password, email string, isAdmin bool) *models.User {
	var u models.User
	if err := db.Where("username = ?", username).First(&u).Error; err == nil {
		return &u
	}
	u = models.User{Username: username, Email: email, IsAdmin: isAdmin, IsActive: true}
	if err := u.SetPassword(password); err != nil {
		log.Printf("[seed] hash password for %s: %v", username, err)
		return nil
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[seed] user %s: %v", username, err)
		return nil
	}
	return &u
}
