package auth

import (
	"context"
	"errors"
	"time"

	"github.com/shortspace/core/internal/models"
	"github.com/shortspace/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenTTL matches the session length of the public API.
const tokenTTL = 7 * 24 * time.Hour

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Register creates an account. Usernames are unique.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.UserModel, error) {
	tx := s.db.WithContext(ctx)

	var count int64
	if err := tx.Model(&models.UserModel{}).Where("username = ?", dto.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{Username: dto.Username, Password: string(hash), Name: name, Mail: dto.Mail}
	return &u, tx.Create(&u).Error
}

// Login verifies credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, username, password, ip string) (string, *models.UserModel, error) {
	tx := s.db.WithContext(ctx)

	var u models.UserModel
	if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, errWrongPassword
	}

	now := time.Now()
	tx.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})

	token, err := jwt.Sign(u.ID, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}
