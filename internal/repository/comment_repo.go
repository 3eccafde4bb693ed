package repository

import (
	"errors"

	"tablero/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByReport returns active comments for a report, newest first. When
// currentUserID is non-zero the per-comment liked flag is resolved with a
// single membership query against comment_likes.
func (r *CommentRepository) ListByReport(reportID, currentUserID uint) ([]models.CommentView, error) {
	var comments []models.Comment
	err := r.db.Where("report_id = ? AND is_active = ?", reportID, true).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	liked := map[uint]bool{}
	if currentUserID != 0 && len(comments) > 0 {
		ids := make([]uint, len(comments))
		for i, c := range comments {
			ids[i] = c.ID
		}
		var likedIDs []uint
		err = r.db.Model(&models.CommentLike{}).
			Where("user_id = ? AND comment_id IN ?", currentUserID, ids).
			Pluck("comment_id", &likedIDs).Error
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, models.NewCommentView(&comments[i], liked[comments[i].ID]))
	}
	return views, nil
}

// Create stores a new comment. A report id that does not resolve is rebound
// to the lazily created default report; report creation and comment insert
// commit or roll back together.
func (r *CommentRepository) Create(userID, reportID uint, content string) (*models.CommentView, error) {
	var comment models.Comment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		resolvedID, err := ensureReport(tx, reportID)
		if err != nil {
			return err
		}
		comment = models.Comment{
			UserID:   userID,
			ReportID: resolvedID,
			Content:  content,
			Likes:    0,
			IsActive: true,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.First(&comment.User, userID).Error
	})
	if err != nil {
		return nil, err
	}
	view := models.NewCommentView(&comment, false)
	return &view, nil
}

// ToggleLike flips the caller's like on a comment. Exactly one of
// insert+increment or delete+decrement happens per call; the counter update
// is a single SQL expression so concurrent toggles cannot lose updates, and
// the decrement clamps at zero.
func (r *CommentRepository) ToggleLike(userID, commentID uint) (action string, likes int, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		var existing models.CommentLike
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			err = tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error
			if err != nil {
				return err
			}
			action = "removed"
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.CommentLike{UserID: userID, CommentID: commentID}).Error; err != nil {
				return err
			}
			err = tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
			if err != nil {
				return err
			}
			action = "added"
		default:
			return err
		}

		var updated models.Comment
		if err := tx.Select("likes").First(&updated, commentID).Error; err != nil {
			return err
		}
		likes = updated.Likes
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return action, likes, nil
}

func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// SoftDelete marks the comment inactive. Content, likes and the row itself
// are retained for history. Idempotent: deleting an already-inactive comment
// succeeds, and existence is the caller's concern (GetByID). MySQL reports
// zero affected rows for a no-change UPDATE, so RowsAffected cannot signal
// absence here.
func (r *CommentRepository) SoftDelete(commentID uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", commentID).Update("is_active", false).Error
}
