package models

import "time"

type Report struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	Description        string    `gorm:"size:500" json:"description"`
	PowerBIReportID    string    `gorm:"column:powerbi_report_id;uniqueIndex;size:100;not null" json:"powerbi_report_id"`
	PowerBIWorkspaceID string    `gorm:"column:powerbi_workspace_id;size:100;not null" json:"powerbi_workspace_id"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
