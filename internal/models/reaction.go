package models

import "time"

type Reaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_user_report_reaction,unique" json:"user_id"`
	ReportID     uint      `gorm:"not null;index:idx_user_report_reaction,unique" json:"report_id"`
	ReactionType string    `gorm:"size:20;not null;index:idx_user_report_reaction,unique" json:"tipo"`
	CreatedAt    time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Report Report `gorm:"foreignKey:ReportID" json:"-"`
}

func (Reaction) TableName() string {
	return "reactions"
}

// ReactionStat is one row of the per-report aggregate.
type ReactionStat struct {
	Tipo  string `json:"tipo"`
	Count int64  `json:"count"`
}
