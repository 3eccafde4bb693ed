package repository

import (
	"errors"

	"tablero/internal/domain"
	"tablero/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidReactionType = errors.New("invalid reaction type")

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Stats aggregates reactions for a report grouped by type. A report with no
// reactions yields the full type set with zero counts so the frontend always
// has a stable shape to render.
func (r *ReactionRepository) Stats(reportID uint) ([]models.ReactionStat, error) {
	var stats []models.ReactionStat
	err := r.db.Model(&models.Reaction{}).
		Select("reaction_type AS tipo, COUNT(id) AS count").
		Where("report_id = ?", reportID).
		Group("reaction_type").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		for _, t := range domain.ReactionTypes {
			stats = append(stats, models.ReactionStat{Tipo: t, Count: 0})
		}
	}
	return stats, nil
}

// Toggle adds or removes the caller's reaction. A user holds at most one
// reaction per report: selecting a new type first clears every prior
// reaction by that user on the report, and re-selecting the current type
// clears it. Sibling deletion and insert commit or roll back together.
func (r *ReactionRepository) Toggle(userID, reportID uint, reactionType string) (action string, err error) {
	if !domain.IsValidReactionType(reactionType) {
		return "", ErrInvalidReactionType
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		resolvedID, err := ensureReport(tx, reportID)
		if err != nil {
			return err
		}

		var existing models.Reaction
		err = tx.Where("user_id = ? AND report_id = ? AND reaction_type = ?", userID, resolvedID, reactionType).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			action = "removed"
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = tx.Where("user_id = ? AND report_id = ?", userID, resolvedID).
				Delete(&models.Reaction{}).Error
			if err != nil {
				return err
			}
			reaction := models.Reaction{UserID: userID, ReportID: resolvedID, ReactionType: reactionType}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
			action = "added"
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

func (r *ReactionRepository) ListByUser(userID, reportID uint) ([]models.Reaction, error) {
	reactions := []models.Reaction{}
	err := r.db.Where("user_id = ? AND report_id = ?", userID, reportID).Find(&reactions).Error
	return reactions, err
}
