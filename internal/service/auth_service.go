package service

import (
	"errors"

	"tablero/config"
	"tablero/internal/auth"
	"tablero/internal/models"
	"tablero/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidCreds = errors.New("invalid username or password")
	ErrInvalidUser  = errors.New("user missing or inactive")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login authenticates by exact username match and returns a fresh access
// token bound to the user's id.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if !u.CheckPassword(password) {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Refresh issues a new token with a fresh expiry window, provided the
// subject still resolves to an active user.
func (s *AuthService) Refresh(userID uint) (string, error) {
	u, err := s.userRepo.GetActiveByID(userID)
	if err != nil {
		return "", ErrInvalidUser
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
}

// CurrentUser resolves the token subject to an active user.
func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	u, err := s.userRepo.GetActiveByID(userID)
	if err != nil {
		return nil, ErrInvalidUser
	}
	return u, nil
}
