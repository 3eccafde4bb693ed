package repository

import (
	"errors"

	"tablero/internal/domain"
	"tablero/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateReport = errors.New("powerbi report id already registered")

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *models.Report) error {
	err := r.db.Create(report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReport
	}
	return err
}

func (r *ReportRepository) ListActive() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("is_active = ?", true).Find(&reports).Error
	return reports, err
}

// GetOrCreateDefault idempotently ensures the default report exists. Lookup
// is by the fixed Power BI report id, not the display name.
func (r *ReportRepository) GetOrCreateDefault() (*models.Report, error) {
	var report models.Report
	err := r.db.Transaction(func(tx *gorm.DB) error {
		id, err := ensureReport(tx, 0)
		if err != nil {
			return err
		}
		return tx.First(&report, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ensureReport resolves reportID to an existing report, creating the default
// report when it does not resolve. Runs inside the caller's transaction so a
// later failure rolls the creation back too.
func ensureReport(tx *gorm.DB, reportID uint) (uint, error) {
	if reportID != 0 {
		var report models.Report
		err := tx.First(&report, reportID).Error
		if err == nil {
			return report.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}
	var def models.Report
	err := tx.Where("powerbi_report_id = ?", domain.DefaultPowerBIReportID).First(&def).Error
	if err == nil {
		return def.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	def = models.Report{
		Name:               domain.DefaultReportName,
		Description:        domain.DefaultReportDescription,
		PowerBIReportID:    domain.DefaultPowerBIReportID,
		PowerBIWorkspaceID: domain.DefaultPowerBIWorkspace,
		IsActive:           true,
	}
	if err := tx.Create(&def).Error; err != nil {
		return 0, err
	}
	return def.ID, nil
}
