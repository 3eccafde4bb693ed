package repository

import (
	"tablero/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetActiveByID resolves a user that is still active; deactivated accounts
// behave as missing.
func (r *UserRepository) GetActiveByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
